package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists accounts in the users collection. Email uniqueness
// is delegated to the unique index created by EnsureIndexes.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`

	Phone              string   `bson:"phone,omitempty"`
	DateOfBirth        string   `bson:"date_of_birth,omitempty"`
	AddressLine        string   `bson:"address_line,omitempty"`
	AddressCity        string   `bson:"address_city,omitempty"`
	AddressZip         string   `bson:"address_zip,omitempty"`
	Gender             string   `bson:"gender,omitempty"`
	Employment         string   `bson:"employment,omitempty"`
	Education          string   `bson:"education,omitempty"`
	SalaryExpectation  string   `bson:"salary_expectation,omitempty"`
	PreferredLocation  string   `bson:"preferred_location,omitempty"`
	InterestedServices []string `bson:"interested_services,omitempty"`
	ResumePath         string   `bson:"resume_path,omitempty"`

	ProfileCompleted bool  `bson:"profile_completed"`
	CreatedAt        int64 `bson:"created_at"`
	UpdatedAt        int64 `bson:"updated_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		Name:               u.Name,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Role:               string(u.Role),
		Phone:              u.Phone,
		DateOfBirth:        u.DateOfBirth,
		AddressLine:        u.Address.Line,
		AddressCity:        u.Address.City,
		AddressZip:         u.Address.Zip,
		Gender:             u.Gender,
		Employment:         u.Employment,
		Education:          u.Education,
		SalaryExpectation:  u.SalaryExpectation,
		PreferredLocation:  u.PreferredLocation,
		InterestedServices: u.InterestedServices,
		ResumePath:         u.ResumePath,
		ProfileCompleted:   u.ProfileCompleted,
		CreatedAt:          u.CreatedAt.Unix(),
		UpdatedAt:          u.UpdatedAt.Unix(),
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		Role:               domain.Role(d.Role),
		Phone:              d.Phone,
		DateOfBirth:        d.DateOfBirth,
		Address:            domain.Address{Line: d.AddressLine, City: d.AddressCity, Zip: d.AddressZip},
		Gender:             d.Gender,
		Employment:         d.Employment,
		Education:          d.Education,
		SalaryExpectation:  d.SalaryExpectation,
		PreferredLocation:  d.PreferredLocation,
		InterestedServices: d.InterestedServices,
		ResumePath:         d.ResumePath,
		ProfileCompleted:   d.ProfileCompleted,
		CreatedAt:          unixToTime(d.CreatedAt),
		UpdatedAt:          unixToTime(d.UpdatedAt),
	}
}

// Create inserts the account. A duplicate-key rejection from the unique email
// index surfaces as domain.ErrEmailTaken, which makes the index the arbiter of
// registration races.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.InsertOne(ctx, toUserDoc(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := toUserDoc(user)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List returns every account, newest first, with password hashes already
// stripped at the projection.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"password_hash": 0})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.User
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
