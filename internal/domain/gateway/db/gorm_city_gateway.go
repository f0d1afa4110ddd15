package db

import (
	"context"
	"strconv"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"

	"gorm.io/gorm"
)

// cityRecord is the gorm model behind the cities table.
type cityRecord struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (cityRecord) TableName() string {
	return "cities"
}

func (r cityRecord) toEntity() entity.City {
	return entity.City{ID: strconv.FormatUint(uint64(r.ID), 10), Name: r.Name}
}

type GormCityGateway struct {
	DB *gorm.DB
}

var _ CityGateway = (*GormCityGateway)(nil)

// NewGormCityGateway migrates the cities table and returns a gateway over it.
func NewGormCityGateway(db *gorm.DB) (*GormCityGateway, error) {
	if err := db.AutoMigrate(&cityRecord{}); err != nil {
		return nil, err
	}
	return &GormCityGateway{DB: db}, nil
}

func (gateway *GormCityGateway) FindAll(ctx context.Context) ([]entity.City, error) {
	var rows []cityRecord
	if err := gateway.DB.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	cities := make([]entity.City, 0, len(rows))
	for _, r := range rows {
		cities = append(cities, r.toEntity())
	}
	return cities, nil
}

func (gateway *GormCityGateway) Create(ctx context.Context, name string) (*entity.City, error) {
	row := cityRecord{Name: name}
	if err := gateway.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	city := row.toEntity()
	return &city, nil
}

func (gateway *GormCityGateway) UpdateByID(ctx context.Context, id string, name string) (*entity.City, error) {
	key, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, ErrNotFound
	}

	result := gateway.DB.WithContext(ctx).Model(&cityRecord{}).Where("id = ?", key).Update("name", name)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &entity.City{ID: id, Name: name}, nil
}

func (gateway *GormCityGateway) DeleteByID(ctx context.Context, id string) error {
	key, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return ErrNotFound
	}

	result := gateway.DB.WithContext(ctx).Delete(&cityRecord{}, key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (gateway *GormCityGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	sqlDB, err := gateway.DB.DB()
	if err != nil {
		return model.ComponentHealthStatus{Status: model.StatusDown, Message: err.Error()}
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		return model.ComponentHealthStatus{Status: model.StatusDown, Message: err.Error()}
	}

	return model.ComponentHealthStatus{Status: model.StatusUp, Message: "postgres"}
}
