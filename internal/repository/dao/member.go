package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrMemberInUse    = errors.New("member has existing lineup entries")
)

type Member struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`

	LineupEntries []LineupEntry `gorm:"foreignKey:MemberID;constraint:OnDelete:RESTRICT"`
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) Insert(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindAll(ctx context.Context) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).Order("name").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *MemberDAO) FindByID(ctx context.Context, id uint) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindByIDs(ctx context.Context, ids []uint) ([]Member, error) {
	var members []Member

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *MemberDAO) Update(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).
		Model(&Member{}).
		Where("id = ?", member.ID).
		Update("name", member.Name)
	if result.Error != nil {
		return Member{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Member{}, ErrMemberNotFound
	}

	return member, nil
}

func (d *MemberDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Member{}, id)
	if result.Error != nil {
		// The restrict constraint on lineup_entries.member_id is the second
		// line of defense behind the service-level guard.
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrMemberInUse
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (d *MemberDAO) CountLineupEntries(ctx context.Context, memberID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&LineupEntry{}).
		Where("member_id = ?", memberID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
