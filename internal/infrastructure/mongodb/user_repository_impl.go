package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/pabloapp/pablo-api/internal/domain/entity"
	"github.com/pabloapp/pablo-api/internal/domain/repository"
)

var (
	errNotFound = errors.New("not found")
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

// Create assigns a fresh id and the fixed evolution table, then persists the
// document. Email uniqueness is not enforced here.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	u.ID = uuid.NewString()
	u.Tasks = []string{}
	u.TasksCompleted = 0
	u.Status = "happy"
	u.EvoCaps = entity.DefaultEvoCaps()
	u.Birthday = time.Now().UTC()

	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail looks up a user and rewrites the transient Filepath with the
// mood suffix the client expects. Only the returned entity carries the
// derived path; the stored document keeps the bare template.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errNotFound
		}
		return nil, err
	}
	u.Filepath = deriveFilepath(u.Filepath, u.Status)
	return u, nil
}

// SetTasks overwrites the task list unconditionally; generation replaces, it
// never appends.
func (r *UserRepository) SetTasks(ctx context.Context, id string, tasks []string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"tasks": tasks},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errNotFound
	}
	return nil
}

// CompleteTask removes one occurrence of task, bumps the completion counter
// and evolves the avatar path, all in a single document update. The read
// that feeds the path computation is not part of that update; two
// overlapping completions for the same user can race. Known gap.
func (r *UserRepository) CompleteTask(ctx context.Context, id string, task string) error {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	newPath := evolveFilepath(u.Filepath, u.EvoCaps, u.TasksCompleted+1)

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$pull": bson.M{"tasks": task},
		"$inc":  bson.M{"tasks_completed": 1},
		"$set":  bson.M{"filepath": newPath},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
