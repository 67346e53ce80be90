package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type employeeRepositoryImpl struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongodb.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{coll: db.Collection(mongodb.EmployeesCollection)}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	doc := employeeDocument{
		ID:           newEmployee.ID,
		EmployeeCode: newEmployee.EmployeeCode,
		FullName:     newEmployee.FullName,
		Email:        newEmployee.Email,
		Department:   newEmployee.Department,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := e.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee %s: %w", newEmployee.EmployeeCode, err)
	}
	return doc.toEntity(), nil
}

func (e *employeeRepositoryImpl) findOne(ctx context.Context, filter bson.M) (employee.Employee, error) {
	var doc employeeDocument
	if err := e.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to find employee: %w", err)
	}
	return doc.toEntity(), nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.findOne(ctx, bson.M{"_id": id})
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	return e.findOne(ctx, bson.M{"employee_id": employeeCode})
}

// ExistsByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error) {
	n, err := e.coll.CountDocuments(ctx, bson.M{"employee_id": employeeCode}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check employee code %s: %w", employeeCode, err)
	}
	return n > 0, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	cur, err := e.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cur.Close(ctx)

	employees := make([]employee.Employee, 0)
	for cur.Next(ctx) {
		var doc employeeDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		employees = append(employees, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	res, err := e.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
