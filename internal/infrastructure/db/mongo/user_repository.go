package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/auth-service/internal/core/domain"
)

const (
	usersCollection = "users"
	rolesCollection = "roles"
)

type UserRepository struct {
	users *mongo.Collection
	roles *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users: db.Collection(usersCollection),
		roles: db.Collection(rolesCollection),
	}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	RoleName     string             `bson:"role_name"`
	CreatedAt    int64              `bson:"created_at"`
}

// EnsureIndexes creates the unique indexes the repository relies on for
// duplicate detection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	if _, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	if _, err := r.roles.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "role_name", Value: 1}}, Options: unique}); err != nil {
		return fmt.Errorf("roles index: %w", err)
	}
	return nil
}

func (r *UserRepository) Find(ctx context.Context) ([]domain.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *UserRepository) FindBy(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query, err := userQuery(filter)
	if err != nil {
		// An id that is not an ObjectID cannot match anything.
		return []domain.User{}, nil
	}
	return r.find(ctx, query)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	found, err := r.FindBy(ctx, domain.UserFilter{ID: id})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &found[0], nil
}

func (r *UserRepository) Add(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.ensureRole(ctx, user.RoleName); err != nil {
		return nil, err
	}

	doc := mongoUser{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		RoleName:     user.RoleName,
		CreatedAt:    user.CreatedAt.Unix(),
	}

	res, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	created := toDomainUser(doc)
	return &created, nil
}

// ensureRole creates the role document when roleName is new.
func (r *UserRepository) ensureRole(ctx context.Context, roleName string) error {
	_, err := r.roles.UpdateOne(ctx,
		bson.M{"role_name": roleName},
		bson.M{"$setOnInsert": bson.M{"role_name": roleName}},
		options.Update().SetUpsert(true),
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("upsert role: %w", err)
	}
	return nil
}

func (r *UserRepository) find(ctx context.Context, query bson.M) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.users.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, toDomainUser(d))
	}
	return users, nil
}

var errInvalidID = errors.New("invalid user id")

// userQuery translates filter into a field-equality query, skipping zero fields.
func userQuery(filter domain.UserFilter) (bson.M, error) {
	query := bson.M{}
	if filter.ID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.ID)
		if err != nil {
			return nil, errInvalidID
		}
		query["_id"] = oid
	}
	if filter.Username != "" {
		query["username"] = filter.Username
	}
	if filter.RoleName != "" {
		query["role_name"] = filter.RoleName
	}
	return query, nil
}

func toDomainUser(d mongoUser) domain.User {
	return domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		RoleName:     d.RoleName,
		CreatedAt:    unixToTime(d.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
