package icons

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/models"
)

func TestResolveKnownCodes(t *testing.T) {
	want := map[models.IconCategory][]models.ConditionCode{
		models.IconSun:               {0, 1},
		models.IconCloudSun:          {2},
		models.IconCloud:             {3},
		models.IconSmog:              {45, 48},
		models.IconCloudShowersHeavy: {51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82},
		models.IconSnowflake:         {71, 73, 75, 77, 85, 86},
		models.IconCloudBolt:         {95, 96, 99},
	}

	total := 0
	for category, codes := range want {
		for _, code := range codes {
			got, err := Resolve(code)
			require.NoError(t, err, "code %d", code)
			assert.Equal(t, category, got, "code %d", code)
			total++
		}
	}
	assert.Len(t, Codes(), total)
}

func TestCodesSharingACategoryAreInterchangeable(t *testing.T) {
	assert.Equal(t, Lookup(51), Lookup(82))
	assert.Equal(t, models.IconCloudShowersHeavy, Lookup(51))
	assert.Equal(t, Lookup(0), Lookup(1))
}

func TestResolveUnknownCode(t *testing.T) {
	for _, code := range []models.ConditionCode{-1, 4, 50, 100} {
		got, err := Resolve(code)
		require.Error(t, err)
		assert.Equal(t, models.IconUnknown, got)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.ErrCodeUnknownCondition, appErr.Code)

		assert.Equal(t, models.IconUnknown, Lookup(code))
		assert.False(t, Known(code))
	}
}

func TestAssetPath(t *testing.T) {
	assert.Equal(t, "icons/cloud-bolt.svg", AssetPath("icons", 95))
	assert.Equal(t, "static/icons/unknown.svg", AssetPath("static/icons/", 42))
	assert.Equal(t, "sun.svg", AssetPath("", 0))
}

func TestCodesAscending(t *testing.T) {
	codes := Codes()
	require.NotEmpty(t, codes)
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
	assert.Equal(t, models.ConditionCode(0), codes[0])
	assert.Equal(t, models.ConditionCode(99), codes[len(codes)-1])
}

func TestBuildTableRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		buildTable([]mapping{
			{[]models.ConditionCode{1}, models.IconSun},
			{[]models.ConditionCode{1}, models.IconCloud},
		})
	})
}
