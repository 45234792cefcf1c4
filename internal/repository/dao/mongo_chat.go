package dao

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type chatDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	Text           string             `bson:"text"`
	Timeout        int64              `bson:"timeout"`
	ExpirationDate int64              `bson:"expiration_date"`
}

type MongoChatDAO struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoChatDAO(collection *mongo.Collection) *MongoChatDAO {
	return &MongoChatDAO{
		client:     collection.Database().Client(),
		collection: collection,
	}
}

// Scope runs fn inside a client session that is always ended when fn returns.
func (d *MongoChatDAO) Scope(ctx context.Context, fn func(ctx context.Context, store ChatStore) error) error {
	sess, err := d.client.StartSession()
	if err != nil {
		return fmt.Errorf("d.client.StartSession -> %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		return fn(sc, d)
	})
}

func (d *MongoChatDAO) EnsureIndexes(ctx context.Context) error {
	_, err := d.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("d.collection.Indexes().CreateOne -> %w", err)
	}

	return nil
}

func (d *MongoChatDAO) Insert(ctx context.Context, chat Chat) (Chat, error) {
	if err := chat.validate(); err != nil {
		return Chat{}, err
	}

	result, err := d.collection.InsertOne(ctx, chatDocument{
		Username:       chat.Username,
		Text:           chat.Text,
		Timeout:        chat.Timeout,
		ExpirationDate: chat.ExpirationDate,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Chat{}, ErrChatExists
		}

		return Chat{}, err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return Chat{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	chat.ID = oid.Hex()

	return chat, nil
}

func (d *MongoChatDAO) FindByID(ctx context.Context, id string) (Chat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not an ObjectID, so it cannot name a stored chat.
		return Chat{}, ErrChatNotFound
	}

	var doc chatDocument
	if err = d.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Chat{}, ErrChatNotFound
		}

		return Chat{}, err
	}

	return doc.toChat(), nil
}

func (d *MongoChatDAO) FindByUsername(ctx context.Context, username string) ([]Chat, error) {
	cursor, err := d.collection.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []chatDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	chats := make([]Chat, 0, len(docs))
	for _, doc := range docs {
		chats = append(chats, doc.toChat())
	}

	return chats, nil
}

func (d *MongoChatDAO) UpdateExpirationByUsername(ctx context.Context, username string, expirationDate int64) (int64, error) {
	result, err := d.collection.UpdateMany(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"expiration_date": expirationDate}},
	)
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}

func (doc chatDocument) toChat() Chat {
	return Chat{
		ID:             doc.ID.Hex(),
		Username:       doc.Username,
		Text:           doc.Text,
		Timeout:        doc.Timeout,
		ExpirationDate: doc.ExpirationDate,
	}
}
