package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peopleops/employee-directory/internal/core/domain"
	"github.com/peopleops/employee-directory/internal/core/ports"
)

const collectionEmployees = "employees"

// EmployeeRepository persists employee records with the email as document id,
// so uniqueness rides on Mongo's primary-key constraint.
type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

// Insert creates a new employee document. A duplicate email surfaces as
// domain.ErrEmailExists via the _id constraint.
func (r *EmployeeRepository) Insert(ctx context.Context, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Employee
	err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) Exists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count employees: %w", err)
	}
	return n > 0, nil
}

func (r *EmployeeRepository) List(ctx context.Context, page ports.PageRequest) ([]*domain.Employee, error) {
	return r.findPage(ctx, bson.M{}, page)
}

// ListByEmailSuffix matches emails ending with suffix using an anchored
// regex on the document id.
func (r *EmployeeRepository) ListByEmailSuffix(ctx context.Context, suffix string, page ports.PageRequest) ([]*domain.Employee, error) {
	filter := bson.M{"_id": primitive.Regex{Pattern: regexp.QuoteMeta(suffix) + "$"}}
	return r.findPage(ctx, filter, page)
}

// ListByRole matches documents whose roles array contains role; Mongo array
// membership makes this a plain equality filter.
func (r *EmployeeRepository) ListByRole(ctx context.Context, role string, page ports.PageRequest) ([]*domain.Employee, error) {
	return r.findPage(ctx, bson.M{"roles": role}, page)
}

func (r *EmployeeRepository) ListByBirthDateRange(ctx context.Context, from, to time.Time, page ports.PageRequest) ([]*domain.Employee, error) {
	filter := bson.M{"birth_date": bson.M{"$gte": from, "$lte": to}}
	return r.findPage(ctx, filter, page)
}

func (r *EmployeeRepository) ListByManager(ctx context.Context, managerEmail string, page ports.PageRequest) ([]*domain.Employee, error) {
	return r.findPage(ctx, bson.M{"manager_email": managerEmail}, page)
}

func (r *EmployeeRepository) SetManager(ctx context.Context, email, managerEmail string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": email}, bson.M{"$set": bson.M{"manager_email": managerEmail}})
	if err != nil {
		return fmt.Errorf("set manager: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) UnsetManager(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": email}, bson.M{"$unset": bson.M{"manager_email": ""}})
	if err != nil {
		return fmt.Errorf("unset manager: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete all employees: %w", err)
	}
	return nil
}

// findPage runs a filtered find sorted ascending by _id (email) with
// skip/limit derived from the page request.
func (r *EmployeeRepository) findPage(ctx context.Context, filter bson.M, page ports.PageRequest) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page.Page) * int64(page.Size)).
		SetLimit(int64(page.Size))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []*domain.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

// EnsureIndexes creates the secondary indexes backing the filter queries.
// The email itself is the _id and needs none.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "roles", Value: 1}}},
		{Keys: bson.D{{Key: "birth_date", Value: 1}}},
		{Keys: bson.D{{Key: "manager_email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
