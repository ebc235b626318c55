package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/gridpath/domain"
	"github.com/beka-birhanu/gridpath/service/i"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrBoardNotFound = i.ErrBoardNotFound

// BoardRepo handles the persistence of boards in MongoDB.
type BoardRepo struct {
	collection *mongo.Collection
}

// NewBoardRepo creates a new BoardRepo with the given MongoDB client, database name, and collection name.
func NewBoardRepo(client *mongo.Client, dbName, collectionName string) *BoardRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &BoardRepo{
		collection: collection,
	}
}

// Save inserts or updates a board in the repository.
// If the board already exists, it updates the existing record.
// If the board does not exist, it adds a new record.
func (b *BoardRepo) Save(ctx context.Context, board *dmn.Board) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": board.ID}
	update := bson.M{
		"$set": bson.M{
			"name":      board.Name,
			"cells":     board.Cells,
			"createdAt": board.CreatedAt,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := b.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a board by its ID.
// Returns an error if the board is not found or if an unexpected error occurs.
func (b *BoardRepo) ByID(ctx context.Context, id string) (*dmn.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var board dmn.Board
	if err := b.collection.FindOne(ctx, filter).Decode(&board); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &board, nil
}
