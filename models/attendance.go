package models

import (
	"attendance/db"
	"time"

	"gorm.io/gorm/clause"
)

// Attendance is one person's first recognized appearance on a given day.
type Attendance struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	CreatedAt int64  `json:"-"`
	Name      string `gorm:"type:varchar(300);index:uniq_name_date,unique;priority:1" json:"name"`
	Date      string `gorm:"type:varchar(10);index:uniq_name_date,unique;priority:2" json:"date"` // 2006-01-02
	Time      string `gorm:"type:varchar(8)" json:"time"`                                         // 15:04:05
}

// TableName overrides the table name
func (Attendance) TableName() string {
	return "attendance"
}

// RecordAttendance inserts a row for (name, day of at) unless one exists.
// The unique index plus conflict-ignore makes this safe under concurrent
// recognition streams. Returns whether a new row was inserted.
func RecordAttendance(name string, at time.Time) (bool, error) {
	record := Attendance{
		CreatedAt: at.Unix(),
		Name:      name,
		Date:      at.Format("2006-01-02"),
		Time:      at.Format("15:04:05"),
	}
	result := db.Instance.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AllAttendance returns every row in insertion order.
func AllAttendance() ([]Attendance, error) {
	var records []Attendance
	err := db.Instance.Order("id ASC").Find(&records).Error
	return records, err
}
