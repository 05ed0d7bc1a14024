package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Kredible-Inc/kredible-lending/internal/pkg/consts"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/db"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/logger"
	"github.com/Kredible-Inc/kredible-lending/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	repo *MongoRepository[models.User]
}

func NewUserRepository() *UserRepository {
	collection := db.MDB.Database.Collection(consts.UsersCollection)
	return &UserRepository{repo: NewMongoRepository[models.User](collection)}
}

func (r *UserRepository) InsertUser(ctx context.Context, user models.User) error {
	_, err := r.repo.Create(user)
	if err != nil {
		logger.Error(ctx, "users : Error while inserting %v", err.Error())
		return fmt.Errorf("users : error while inserting %v", err.Error())
	}
	return nil
}

func (r *UserRepository) UserByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	user, err := r.repo.Read(bson.M{"walletAddress": walletAddress})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateUserByWallet(ctx context.Context, walletAddress string, patch bson.M) error {
	now := time.Now()
	patch["updatedAt"] = now
	return r.repo.Update(bson.M{"walletAddress": walletAddress}, patch)
}

// ApplyLoanTotals adjusts the running totals and counters after a state
// transition. Deltas may be negative.
func (r *UserRepository) ApplyLoanTotals(ctx context.Context, walletAddress string, lentDelta, borrowedDelta float64, activeLoansDelta, reputationDelta int) error {
	update := bson.M{
		"$inc": bson.M{
			"totalLent":     lentDelta,
			"totalBorrowed": borrowedDelta,
			"activeLoans":   activeLoansDelta,
			"reputation":    reputationDelta,
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	err := r.repo.UpdateRaw(bson.M{"walletAddress": walletAddress}, update)
	if err != nil {
		logger.Error(ctx, "users : Error while applying loan totals %v", err.Error())
	}
	return err
}

func (r *UserRepository) UpdateCreditScore(ctx context.Context, walletAddress string, score models.CreditScore) error {
	now := time.Now()
	patch := bson.M{
		"creditScore":           score.Score,
		"creditScoreDetails":    score,
		"lastCreditScoreUpdate": now,
		"updatedAt":             now,
	}
	return r.repo.Update(bson.M{"walletAddress": walletAddress}, patch)
}

func (r *UserRepository) SetLoggedIn(ctx context.Context, walletAddress string, loggedIn bool) error {
	return r.repo.Update(bson.M{"walletAddress": walletAddress}, bson.M{"loggedIn": loggedIn})
}
