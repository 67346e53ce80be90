package mongodb

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints the services rely on
func EnsureIndexes(ctx context.Context, db *mongodb.DB) error {
	_, err := db.Collection(mongodb.EmployeesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create employees index: %w", err)
	}

	_, err = db.Collection(mongodb.AttendanceCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create attendance indexes: %w", err)
	}
	return nil
}
