package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/BuzzLyutic/todo-app/internal/model"
)

const (
	DefaultMongoDatabase = "todoapp"
	TodosCollection      = "todos"
)

type todoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	Completed bool               `bson:"completed"`
	OwnerID   string             `bson:"ownerId,omitempty"`
}

func (d todoDocument) toModel() model.Todo {
	return model.Todo{
		ID:        d.ID.Hex(),
		Text:      d.Text,
		Completed: d.Completed,
		OwnerID:   d.OwnerID,
	}
}

type MongoRepo struct { // Репозиторий поверх MongoDB, одна коллекция todos
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoRepo(client *mongo.Client, database string) *MongoRepo {
	if database == "" {
		database = DefaultMongoDatabase
	}
	return &MongoRepo{
		client: client,
		coll:   client.Database(database).Collection(TodosCollection),
	}
}

// ConnectMongo открывает клиент по строке подключения; база берется из пути URI.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, "", fmt.Errorf("parse mongo uri: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, "", fmt.Errorf("connect mongo: %w", err)
	}
	return client, cs.Database, nil
}

func (r *MongoRepo) List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	query := bson.M{}
	if filter.OwnerID != nil {
		query["ownerId"] = *filter.OwnerID
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []todoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	todos := make([]model.Todo, 0, len(docs))
	for _, d := range docs {
		todos = append(todos, d.toModel())
	}
	return todos, nil
}

func (r *MongoRepo) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	doc := todoDocument{
		ID:      primitive.NewObjectID(),
		Text:    t.Text,
		OwnerID: t.OwnerID,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return t, ErrorConflict
		}
		return t, err
	}
	return doc.toModel(), nil
}

func (r *MongoRepo) Complete(ctx context.Context, id string) (model.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Todo{}, ErrorNotFound
	}

	var doc todoDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"completed": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Todo{}, ErrorNotFound
	}
	if err != nil {
		return model.Todo{}, err
	}
	return doc.toModel(), nil
}

func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrorNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}
