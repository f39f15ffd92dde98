package repository

import (
	"renthub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deleteListings removes listings and every row that depends on them,
// whether or not the database enforces the ON DELETE CASCADE constraints.
func deleteListings(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("listing_id IN ?", ids).Delete(&models.Image{}).Error; err != nil {
		return err
	}
	for _, stmt := range []string{
		"DELETE FROM listing_property_types WHERE listing_id IN ?",
		"DELETE FROM listing_features WHERE listing_id IN ?",
		"DELETE FROM collection_listings WHERE listing_id IN ?",
	} {
		if err := tx.Exec(stmt, ids).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", ids).Delete(&models.Listing{}).Error
}

// deleteCollections removes collections and their listing associations
func deleteCollections(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Exec("DELETE FROM collection_listings WHERE collection_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Collection{}).Error
}
