package database

import (
	"errors"
	"fmt"
	"os"

	"url-classifier/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrMissingTable is returned when a store lacks the rows an artifact needs.
var ErrMissingTable = errors.New("artifact table missing")

// Open connects to an existing SQLite artifact store.
func Open(path string) (*gorm.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return open(path)
}

// Create opens path for writing, creating the file when needed.
func Create(path string) (*gorm.DB, error) {
	return open(path)
}

func open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ReadVectorizer(db *gorm.DB) (models.VectorizerParams, []models.VocabularyTerm, error) {
	var params models.VectorizerParams
	var terms []models.VocabularyTerm

	if !db.Migrator().HasTable(&models.VocabularyTerm{}) || !db.Migrator().HasTable(&models.VectorizerParams{}) {
		return params, nil, fmt.Errorf("vectorizer: %w", ErrMissingTable)
	}
	if err := db.First(&params).Error; err != nil {
		return params, nil, fmt.Errorf("vectorizer params: %w", err)
	}
	if err := db.Order("feature_index").Find(&terms).Error; err != nil {
		return params, nil, fmt.Errorf("vocabulary: %w", err)
	}
	return params, terms, nil
}

func ReadModel(db *gorm.DB) (models.ModelParams, []models.Coefficient, error) {
	var params models.ModelParams
	var coefs []models.Coefficient

	if !db.Migrator().HasTable(&models.Coefficient{}) || !db.Migrator().HasTable(&models.ModelParams{}) {
		return params, nil, fmt.Errorf("model: %w", ErrMissingTable)
	}
	if err := db.First(&params).Error; err != nil {
		return params, nil, fmt.Errorf("model params: %w", err)
	}
	if err := db.Order("feature_index").Find(&coefs).Error; err != nil {
		return params, nil, fmt.Errorf("coefficients: %w", err)
	}
	return params, coefs, nil
}

// WriteVectorizer replaces any vectorizer already in the store.
func WriteVectorizer(db *gorm.DB, params models.VectorizerParams, terms []models.VocabularyTerm) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(&models.VocabularyTerm{}, &models.VectorizerParams{}); err != nil {
			return err
		}
		if err := tx.AutoMigrate(&models.VocabularyTerm{}, &models.VectorizerParams{}); err != nil {
			return err
		}
		params.ID = 1
		if err := tx.Create(&params).Error; err != nil {
			return err
		}
		if len(terms) == 0 {
			return nil
		}
		return tx.CreateInBatches(terms, 500).Error
	})
}

// WriteModel replaces any model already in the store.
func WriteModel(db *gorm.DB, params models.ModelParams, coefs []models.Coefficient) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(&models.Coefficient{}, &models.ModelParams{}); err != nil {
			return err
		}
		if err := tx.AutoMigrate(&models.Coefficient{}, &models.ModelParams{}); err != nil {
			return err
		}
		params.ID = 1
		if err := tx.Create(&params).Error; err != nil {
			return err
		}
		if len(coefs) == 0 {
			return nil
		}
		return tx.CreateInBatches(coefs, 500).Error
	})
}
