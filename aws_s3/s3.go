package aws_s3

import (
	"io"
	"sync"
	"time"

	"github.com/CPU-commits/RedInclusion/settings"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var settingsData = settings.GetSettings()

const PRESIGN_DURATION = 15 * time.Minute

type AWSS3 struct {
	bucket string
	region string

	once sync.Once
	sess *session.Session
	err  error
}

func (a *AWSS3) session() (*session.Session, error) {
	a.once.Do(func() {
		a.sess, a.err = session.NewSession(&aws.Config{
			Region: aws.String(a.region),
		})
	})
	return a.sess, a.err
}

func (a *AWSS3) UploadFile(key, contentType string, body io.Reader) (string, error) {
	sess, err := a.session()
	if err != nil {
		return "", err
	}
	uploader := s3manager.NewUploader(sess)
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}

func (a *AWSS3) GetFile(key string) ([]byte, error) {
	sess, err := a.session()
	if err != nil {
		return nil, err
	}
	buf := aws.NewWriteAtBuffer([]byte{})
	downloader := s3manager.NewDownloader(sess)
	_, err = downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *AWSS3) GetSignedURL(key string) (string, error) {
	sess, err := a.session()
	if err != nil {
		return "", err
	}
	req, _ := s3.New(sess).GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	return req.Presign(PRESIGN_DURATION)
}

func NewAWSS3() *AWSS3 {
	return &AWSS3{
		bucket: settingsData.AWS_BUCKET,
		region: settingsData.AWS_REGION,
	}
}
