package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClauses(t *testing.T) {
	assert.Equal(t,
		[]string{"reservation_date ASC"},
		orderClauses([]string{"date"}))

	assert.Equal(t,
		[]string{"reservation_date DESC", "start_time ASC"},
		orderClauses([]string{"-date", "time"}))

	assert.Equal(t,
		[]string{"persons DESC", "created_at ASC"},
		orderClauses([]string{"-persons", "created_at"}))
}

func TestOrderClauses_IgnoresUnknownColumns(t *testing.T) {
	// unknown keys are skipped so callers cannot order by arbitrary SQL
	assert.Equal(t,
		[]string{"start_time ASC"},
		orderClauses([]string{"password_hash", "time", "drop table"}))
}

func TestOrderClauses_Default(t *testing.T) {
	want := []string{"reservation_date DESC, start_time DESC"}

	assert.Equal(t, want, orderClauses(nil))
	assert.Equal(t, want, orderClauses([]string{}))
	assert.Equal(t, want, orderClauses([]string{"unknown"}))
}
