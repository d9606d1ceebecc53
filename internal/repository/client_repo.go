package repository

import (
	"context"

	"facturas/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	return dbFrom(ctx, r.db).Create(client).Error
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var client model.Client
	if err := dbFrom(ctx, r.db).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := dbFrom(ctx, r.db).Order("id desc").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Delete removes a client by id. The bool reports whether a row existed.
func (r *clientRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := dbFrom(ctx, r.db).Delete(&model.Client{}, id)
	return res.RowsAffected > 0, res.Error
}
