package history

import (
	"brainbox/internal/core/domain/chat"
	e "brainbox/internal/core/domain/errors"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DEFAULT_DATABASE = "ai_chatbot"
	COLLECTION       = "chat_history"
)

type mongoMessage struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Who  string             `bson:"who"`
	Text string             `bson:"text"`
}

// MongoHistoryRepository keeps the conversation in the chat_history
// collection, ordered by insertion.
type MongoHistoryRepository struct {
	coll *mongo.Collection
}

func NewMongoHistoryRepository(database *mongo.Database) *MongoHistoryRepository {
	if database == nil {
		panic(e.NewNilArgumentError("database"))
	}
	return &MongoHistoryRepository{coll: database.Collection(COLLECTION)}
}

func (r *MongoHistoryRepository) Append(ctx context.Context, messages ...chat.Message) error {
	if len(messages) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(messages))
	for _, m := range messages {
		docs = append(docs, mongoMessage{ID: primitive.NewObjectID(), Who: string(m.Who), Text: m.Text})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert chat messages: %w", err)
	}
	return r.trim(ctx)
}

// trim removes everything older than the last MAX_HISTORY_LEN messages.
func (r *MongoHistoryRepository) trim(ctx context.Context) error {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(chat.MAX_HISTORY_LEN - 1).
		SetProjection(bson.M{"_id": 1})

	var oldestKept mongoMessage
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&oldestKept)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find oldest kept chat message: %w", err)
	}

	_, err = r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$lt": oldestKept.ID}})
	if err != nil {
		return fmt.Errorf("trim chat messages: %w", err)
	}
	return nil
}

func (r *MongoHistoryRepository) Read(ctx context.Context) ([]chat.Message, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoMessage
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode chat messages: %w", err)
	}

	messages := make([]chat.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, chat.Message{Who: chat.Who(doc.Who), Text: doc.Text})
	}
	return messages, nil
}

// Export renders the history in the same layout the file backend stores.
func (r *MongoHistoryRepository) Export(ctx context.Context) ([]byte, error) {
	messages, err := r.Read(ctx)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return emptyExport, nil
	}

	items := make([]messageSchema, 0, len(messages))
	for _, m := range messages {
		items = append(items, encodeMessage(m))
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *MongoHistoryRepository) Clear(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear chat messages: %w", err)
	}
	return nil
}
