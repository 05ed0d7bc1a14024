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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LendingTransactionRepository struct {
	repo *MongoRepository[models.LendingTransaction]
}

func NewLendingTransactionRepository() *LendingTransactionRepository {
	collection := db.MDB.Database.Collection(consts.LendingTransactionsCollection)
	return &LendingTransactionRepository{repo: NewMongoRepository[models.LendingTransaction](collection)}
}

func (r *LendingTransactionRepository) InsertLendingTransaction(ctx context.Context, txn models.LendingTransaction) error {
	_, err := r.repo.Create(txn)
	if err != nil {
		logger.Error(ctx, "lendingTransactions : Error while inserting %v", err.Error())
		return fmt.Errorf("lendingTransactions : error while inserting %v", err.Error())
	}
	return nil
}

func (r *LendingTransactionRepository) LendingTransactionsByLender(ctx context.Context, lenderAddress string) ([]models.LendingTransaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.repo.FindWithOptions(bson.M{"lenderAddress": lenderAddress}, opts)
}

func (r *LendingTransactionRepository) CountByLender(ctx context.Context, lenderAddress string) (int64, error) {
	return r.repo.CountDocuments(bson.M{"lenderAddress": lenderAddress})
}

func (r *LendingTransactionRepository) TransitionStatus(ctx context.Context, matchID primitive.ObjectID, fromStatus, toStatus string) (bool, error) {
	matched, err := r.repo.UpdateIf(
		bson.M{"matchId": matchID, "status": fromStatus},
		bson.M{"$set": bson.M{"status": toStatus}},
	)
	if err != nil {
		logger.Error(ctx, "lendingTransactions : Error while updating status %v", err.Error())
		return false, err
	}
	return matched > 0, nil
}

func (r *LendingTransactionRepository) FindUnpublished(ctx context.Context, olderThan time.Time) ([]models.LendingTransaction, error) {
	return r.repo.FindAll(bson.M{
		"publishedToKafka": false,
		"createdAt":        bson.M{"$lt": olderThan},
	})
}

func (r *LendingTransactionRepository) MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error {
	err := r.repo.Update(bson.M{"_id": id}, bson.M{"publishedToKafka": true})
	if err != nil {
		logger.Error(ctx, "lendingTransactions : Error while marking published %v", err.Error())
	}
	return err
}

type BorrowingTransactionRepository struct {
	repo *MongoRepository[models.BorrowingTransaction]
}

func NewBorrowingTransactionRepository() *BorrowingTransactionRepository {
	collection := db.MDB.Database.Collection(consts.BorrowingTransactionsCollection)
	return &BorrowingTransactionRepository{repo: NewMongoRepository[models.BorrowingTransaction](collection)}
}

func (r *BorrowingTransactionRepository) InsertBorrowingTransaction(ctx context.Context, txn models.BorrowingTransaction) error {
	_, err := r.repo.Create(txn)
	if err != nil {
		logger.Error(ctx, "borrowingTransactions : Error while inserting %v", err.Error())
		return fmt.Errorf("borrowingTransactions : error while inserting %v", err.Error())
	}
	return nil
}

func (r *BorrowingTransactionRepository) BorrowingTransactionsByBorrower(ctx context.Context, borrowerAddress string) ([]models.BorrowingTransaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.repo.FindWithOptions(bson.M{"borrowerAddress": borrowerAddress}, opts)
}

func (r *BorrowingTransactionRepository) CountByBorrower(ctx context.Context, borrowerAddress string) (int64, error) {
	return r.repo.CountDocuments(bson.M{"borrowerAddress": borrowerAddress})
}

func (r *BorrowingTransactionRepository) TransitionStatus(ctx context.Context, matchID primitive.ObjectID, fromStatus, toStatus string) (bool, error) {
	matched, err := r.repo.UpdateIf(
		bson.M{"matchId": matchID, "status": fromStatus},
		bson.M{"$set": bson.M{"status": toStatus}},
	)
	if err != nil {
		logger.Error(ctx, "borrowingTransactions : Error while updating status %v", err.Error())
		return false, err
	}
	return matched > 0, nil
}

func (r *BorrowingTransactionRepository) FindUnpublished(ctx context.Context, olderThan time.Time) ([]models.BorrowingTransaction, error) {
	return r.repo.FindAll(bson.M{
		"publishedToKafka": false,
		"createdAt":        bson.M{"$lt": olderThan},
	})
}

func (r *BorrowingTransactionRepository) MarkPublishedToKafka(ctx context.Context, id primitive.ObjectID) error {
	err := r.repo.Update(bson.M{"_id": id}, bson.M{"publishedToKafka": true})
	if err != nil {
		logger.Error(ctx, "borrowingTransactions : Error while marking published %v", err.Error())
	}
	return err
}
