package db

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/CPU-commits/RedInclusion/settings"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var settingsData = settings.GetSettings()

var Ctx = context.Background()

const CONNECT_TIMEOUT = 10 * time.Second

type MongoConnection struct {
	uri    string
	dbName string

	once     sync.Once
	client   *mongo.Client
	database *mongo.Database
	err      error
}

func buildURI(host string) string {
	if settingsData.MONGO_ROOT_USERNAME == "" {
		return fmt.Sprintf("%s://%s", settingsData.MONGO_CONNECTION, host)
	}
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		settingsData.MONGO_CONNECTION,
		url.QueryEscape(settingsData.MONGO_ROOT_USERNAME),
		url.QueryEscape(settingsData.MONGO_ROOT_PASSWORD),
		host,
	)
}

// Connection is opened on first use
func NewConnection(host, dbName string) *MongoConnection {
	return &MongoConnection{
		uri:    buildURI(host),
		dbName: dbName,
	}
}

func (m *MongoConnection) connect() error {
	m.once.Do(func() {
		ctx, cancel := context.WithTimeout(Ctx, CONNECT_TIMEOUT)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
		if err != nil {
			m.err = err
			return
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			zap.L().Warn("mongodb ping failed", zap.Error(err))
		}
		m.client = client
		m.database = client.Database(m.dbName)
	})
	return m.err
}

func (m *MongoConnection) Database() (*mongo.Database, error) {
	if err := m.connect(); err != nil {
		return nil, err
	}
	return m.database, nil
}

func (m *MongoConnection) GetCollection(collection string) *mongo.Collection {
	database, err := m.Database()
	if err != nil {
		panic(err)
	}
	return database.Collection(collection)
}

func (m *MongoConnection) GetCollections() ([]string, error) {
	database, err := m.Database()
	if err != nil {
		return nil, err
	}
	return database.ListCollectionNames(Ctx, bson.D{})
}

func (m *MongoConnection) CreateCollection(
	name string,
	opts *options.CreateCollectionOptions,
) error {
	database, err := m.Database()
	if err != nil {
		return err
	}
	return database.CreateCollection(Ctx, name, opts)
}

func (m *MongoConnection) Disconnect() error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(Ctx)
}
