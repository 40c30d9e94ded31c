package repositories

import (
	"context"
	"time"

	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/utils"
	"homeinsight-catalog/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

// FindByEmail returns mongo.ErrNoDocuments when no account uses email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	start := time.Now()
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.ObserveMongo("find_one", database.UsersCollection, start, nil)
		return nil, err
	}
	utils.ObserveMongo("find_one", database.UsersCollection, start, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	utils.ObserveMongo("insert", database.UsersCollection, start, err)
	return err
}
