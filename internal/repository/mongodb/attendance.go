package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type attendanceRepositoryImpl struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongodb.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{coll: db.Collection(mongodb.AttendanceCollection)}
}

// pipeline matches, sorts newest first and joins the owning employee.
func pipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         mongodb.EmployeesCollection,
			"localField":   "employee_id",
			"foreignField": "_id",
			"as":           "employee",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$employee",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (r *attendanceRepositoryImpl) aggregate(ctx context.Context, match bson.M) ([]attendance.Attendance, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline(match))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer cur.Close(ctx)

	records := make([]attendance.Attendance, 0)
	for cur.Next(ctx) {
		var doc attendanceDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	doc := attendanceDocument{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.UTC(),
		Status:     string(a.Status),
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return r.GetByID(ctx, a.ID)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	records, err := r.aggregate(ctx, bson.M{"_id": id})
	if err != nil {
		return attendance.Attendance{}, err
	}
	if len(records) == 0 {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return records[0], nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	n, err := r.coll.CountDocuments(ctx,
		bson.M{"employee_id": employeeID, "date": date.UTC()},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return n > 0, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	match := bson.M{}
	if filter.EmployeeID != "" {
		match["employee_id"] = filter.EmployeeID
	}
	return r.aggregate(ctx, match)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete attendance with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
	}
	return res.DeletedCount, nil
}
