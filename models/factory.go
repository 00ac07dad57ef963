package models

import (
	"time"

	"github.com/CPU-commits/RedInclusion/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var now = time.Now

type Collection interface {
	Use() *mongo.Collection
	GetByID(id primitive.ObjectID) *mongo.SingleResult
	GetOne(filter bson.D) *mongo.SingleResult
	GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error)
	Aggregate(pipeline mongo.Pipeline) (*mongo.Cursor, error)
	Count(filter bson.D) (int64, error)
	NewDocument(data interface{}) (*mongo.InsertOneResult, error)
	UpdateByID(id primitive.ObjectID, update bson.D) (*mongo.UpdateResult, error)
	DeleteByID(id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// Shared implementation, every model embeds it
type model struct {
	CollectionName string
}

func (m *model) Use() *mongo.Collection {
	return DbConnect.GetCollection(m.CollectionName)
}

func (m *model) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	cursor := m.Use().FindOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (m *model) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := m.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (m *model) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := m.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (m *model) Aggregate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := m.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (m *model) Count(filter bson.D) (int64, error) {
	return m.Use().CountDocuments(db.Ctx, filter)
}

func (m *model) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := m.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *model) UpdateByID(id primitive.ObjectID, update bson.D) (*mongo.UpdateResult, error) {
	return m.Use().UpdateByID(db.Ctx, id, update)
}

func (m *model) DeleteByID(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return m.Use().DeleteOne(db.Ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
}
