package repository

import (
	"gorm.io/gorm"

	"github.com/frogcrew/api/internal/model"
)

// Cascade helpers remove children before parents. Foreign keys also carry
// ON DELETE CASCADE, but sqlite only honours them when the connection enables
// foreign_keys, so the repositories never rely on it alone.

func deleteCrewSchedules(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("crew_schedule_id IN ?", ids).Delete(&model.CrewAssignment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.CrewSchedule{}, ids).Error
}

func deleteGames(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var crewIDs []uint
	if err := tx.Model(&model.CrewSchedule{}).Where("game_id IN ?", ids).Pluck("id", &crewIDs).Error; err != nil {
		return err
	}
	if err := deleteCrewSchedules(tx, crewIDs); err != nil {
		return err
	}
	if err := tx.Where("game_id IN ?", ids).Delete(&model.Availability{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Game{}, ids).Error
}

// first loads a single row into dest, returning found=false instead of an
// error when nothing matches.
func first(tx *gorm.DB, dest any, conds ...any) (found bool, err error) {
	res := tx.Limit(1).Find(dest, conds...)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func orderedGames(tx *gorm.DB) *gorm.DB {
	return tx.Order("game_date, id")
}
