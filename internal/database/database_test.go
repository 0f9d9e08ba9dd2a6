package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex"`
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Config{
		Driver:       "sqlite",
		DSN:          "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on",
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(&widget{}))
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle", DSN: "x"}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestPing(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.Ping(context.Background()))
}

func TestTransaction_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.Transaction(ctx, func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		return db.Conn(ctx).Create(&widget{Name: "camera"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Conn(ctx).Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.Transaction(ctx, func(ctx context.Context) error {
		if err := db.Conn(ctx).Create(&widget{Name: "replay"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Conn(ctx).Model(&widget{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransaction_NestedJoinsOuter(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.Transaction(ctx, func(outer context.Context) error {
		return db.Transaction(outer, func(inner context.Context) error {
			assert.Same(t, db.Conn(outer), db.Conn(inner))
			return nil
		})
	})
	assert.NoError(t, err)
}

func TestTranslate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	assert.Nil(t, Translate(nil))
	assert.ErrorIs(t, Translate(gorm.ErrRecordNotFound), ErrNotFound)

	require.NoError(t, db.Conn(ctx).Create(&widget{Name: "dup"}).Error)
	err := Translate(db.Conn(ctx).Create(&widget{Name: "dup"}).Error)
	assert.ErrorIs(t, err, ErrDuplicate)

	other := errors.New("other")
	assert.Equal(t, other, Translate(other))
}
