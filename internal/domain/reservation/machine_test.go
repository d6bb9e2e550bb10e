//go:build unit

package reservation_test

import (
	"testing"

	"cast-booking/internal/domain/pricing"
	"cast-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine() *reservation.Machine {
	return reservation.NewMachine("cast-001", "さくら", 200, 100)
}

func strPtr(s string) *string { return &s }

func courseUpdate(id, minutes, cost, reward int) reservation.Update {
	courseType := pricing.CourseTypeDate
	name := "60分コース"
	return reservation.Update{
		CourseType:   &courseType,
		CourseID:     &id,
		CourseName:   &name,
		SelectedTime: &minutes,
		CoursePoints: &cost,
		RewardPoints: &reward,
	}
}

// drives a machine to the given step with a complete draft
func advanceTo(t *testing.T, m *reservation.Machine, target reservation.Step) {
	t.Helper()
	steps := []reservation.Update{
		{Date: strPtr("2024-06-10"), Time: strPtr("18:00")},
		courseUpdate(1, 60, 3000, 1500),
		{Options: []reservation.SelectedOption{{ID: 10, Name: "ドリンク", Price: 500}}},
		{Location: strPtr("新宿駅東口")},
	}
	for _, u := range steps {
		if m.Step() >= target {
			return
		}
		require.NoError(t, m.Advance(u))
	}
}

func TestMachineAdvance(t *testing.T) {
	t.Run("DATEからCONFIRMまで直列に進む", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepConfirm)
		assert.Equal(t, reservation.StepConfirm, m.Step())

		d := m.Draft()
		assert.Equal(t, "2024-06-10", d.Date)
		assert.Equal(t, 1, d.CourseID)
		assert.Len(t, d.Options, 1)
		assert.Equal(t, "新宿駅東口", d.Location)
	})

	t.Run("CONFIRMから先へは進めない", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepConfirm)
		err := m.Advance(reservation.Update{})
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("必須項目が欠けたAdvanceは状態を変えない", func(t *testing.T) {
		m := newMachine()
		err := m.Advance(reservation.Update{Date: strPtr("2024-06-10")}) // time missing

		var stepErr *reservation.StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, reservation.StepDate, stepErr.Step)
		assert.Contains(t, stepErr.Fields, "time")

		assert.Equal(t, reservation.StepDate, m.Step())
		assert.Empty(t, m.Draft().Date)
	})

	t.Run("コース変更でオプションはリセット", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepLocation)
		require.Len(t, m.Draft().Options, 1)

		// back to COURSE, pick a different course
		require.NoError(t, m.Retreat())
		require.NoError(t, m.Retreat())
		require.NoError(t, m.Advance(courseUpdate(2, 90, 4500, 2250)))

		d := m.Draft()
		assert.Equal(t, 2, d.CourseID)
		assert.Empty(t, d.Options, "options from the old course must not survive")
	})

	t.Run("同じコースの再選択ではオプション維持", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepLocation)

		require.NoError(t, m.Retreat())
		require.NoError(t, m.Retreat())
		require.NoError(t, m.Advance(courseUpdate(1, 60, 3000, 1500)))

		assert.Len(t, m.Draft().Options, 1)
	})

	t.Run("オプション重複は除去", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepOptions)
		require.NoError(t, m.Advance(reservation.Update{Options: []reservation.SelectedOption{
			{ID: 10, Price: 500},
			{ID: 10, Price: 500},
			{ID: 11, Price: 1000},
		}}))
		assert.Len(t, m.Draft().Options, 2)
	})
}

func TestMachineRetreat(t *testing.T) {
	t.Run("DATEからは戻れない", func(t *testing.T) {
		m := newMachine()
		assert.ErrorIs(t, m.Retreat(), reservation.ErrInvalidTransition)
	})

	t.Run("戻ってもドラフトは保持", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepCourse)
		require.NoError(t, m.Retreat())
		assert.Equal(t, reservation.StepDate, m.Step())
		assert.Equal(t, "2024-06-10", m.Draft().Date)
	})
}

func TestMachineSubmission(t *testing.T) {
	t.Run("確定ペイロードを組み立てる", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepConfirm)

		sub, err := m.Submission("user-42")
		require.NoError(t, err)

		assert.Equal(t, "user-42", sub.UserID)
		assert.Equal(t, "cast-001", sub.CastID)
		assert.Equal(t, "2024-06-10T18:00:00", sub.Date)
		assert.Equal(t, 60, sub.SelectedTime)
		assert.Equal(t, 3000+200+500, sub.TotalPoints)
		assert.Equal(t, 1500+200+500+100, sub.CastRewardPoints)
		assert.Equal(t, 100, sub.Fare)
		assert.Equal(t, 200, sub.Shimei)
		assert.Equal(t, "pending_user", sub.Status)
		assert.Equal(t, "pending", sub.ProgressStatus)
		require.Len(t, sub.Options, 1)
		assert.Equal(t, 10, sub.Options[0].OptionID)
		assert.Equal(t, 500, sub.Options[0].OptionPrice)
	})

	t.Run("CONFIRM以外ではNG", func(t *testing.T) {
		m := newMachine()
		_, err := m.Submission("user-42")
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})

	t.Run("空白のみの場所はLOCATIONで弾く", func(t *testing.T) {
		m := newMachine()
		advanceTo(t, m, reservation.StepLocation)

		err := m.Advance(reservation.Update{Location: strPtr("  ")})
		var stepErr *reservation.StepValidationError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, []string{"location"}, stepErr.Fields)

		// the draft survives for retry
		assert.Equal(t, reservation.StepLocation, m.Step())
		assert.Equal(t, 1, m.Draft().CourseID)
	})
}

func TestMachineReset(t *testing.T) {
	m := newMachine()
	advanceTo(t, m, reservation.StepConfirm)
	m.Reset()

	assert.Equal(t, reservation.StepDate, m.Step())
	d := m.Draft()
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Options)
	// cast identity and fees survive for a follow-up booking
	assert.Equal(t, "cast-001", d.CastID)
	assert.Equal(t, "さくら", d.CastName)
	assert.Equal(t, 200, d.SelectionFee)
	assert.Equal(t, 100, d.Fare)
}
