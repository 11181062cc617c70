package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlitePath(t *testing.T) {
	tests := []struct {
		dsn    string
		want   string
		sqlite bool
	}{
		{"sqlite://./site.db", "./site.db", true},
		{"sqlite:site.db", "site.db", true},
		{"file::memory:", "file::memory:", true},
		{"host=localhost user=postgres dbname=site", "", false},
		{"postgres://u:p@localhost/site", "", false},
	}

	for _, tt := range tests {
		got, ok := sqlitePath(tt.dsn)
		assert.Equal(t, tt.sqlite, ok, tt.dsn)
		assert.Equal(t, tt.want, got, tt.dsn)
	}
}

func TestNewInMemory_Isolated(t *testing.T) {
	type probe struct {
		Id   int
		Name string
	}

	a, err := NewInMemory()
	require.NoError(t, err)
	b, err := NewInMemory()
	require.NoError(t, err)

	require.NoError(t, Migrate(a, &probe{}))
	require.NoError(t, a.Create(&probe{Name: "x"}).Error)

	assert.False(t, b.Migrator().HasTable(&probe{}))

	var n int64
	require.NoError(t, a.Model(&probe{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestNewGormDBFromDSN_Empty(t *testing.T) {
	_, err := NewGormDBFromDSN("")
	assert.Error(t, err)
}
