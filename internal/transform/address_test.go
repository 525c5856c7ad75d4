package transform

import (
	"testing"

	"evcharge-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		name         string
		addr         *string
		city         *string
		district     *string
		neighborhood *string
	}{
		{
			name:         "full address",
			addr:         strPtr("서울특별시 강남구 역삼동 123"),
			city:         strPtr("서울특별시"),
			district:     strPtr("강남구"),
			neighborhood: strPtr("역삼동"),
		},
		{
			name: "city only",
			addr: strPtr("서울특별시"),
			city: strPtr("서울특별시"),
		},
		{
			name:     "two tokens",
			addr:     strPtr("세종특별자치시 한누리대로"),
			city:     strPtr("세종특별자치시"),
			district: strPtr("한누리대로"),
		},
		{
			name:         "double space yields empty token",
			addr:         strPtr("부산광역시  해운대구"),
			city:         strPtr("부산광역시"),
			district:     strPtr(""),
			neighborhood: strPtr("해운대구"),
		},
		{
			name: "null address",
			addr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAddress(tt.addr)
			assert.Equal(t, tt.city, got.City)
			assert.Equal(t, tt.district, got.District)
			assert.Equal(t, tt.neighborhood, got.Neighborhood)
		})
	}
}

func addressFixture() []models.StationAddress {
	return WithAddressParts([]models.StationAddress{
		{ID: "S1", Name: "역삼 충전소", Address: strPtr("A B 역삼동 1")},
		{ID: "S2", Name: "삼성 충전소", Address: strPtr("A B 삼성동 2")},
		{ID: "S3", Name: "서초 충전소", Address: strPtr("A C 서초동 3")},
		{ID: "S4", Name: "해운대 충전소", Address: strPtr("Z B 우동 4")},
		{ID: "S5", Name: "주소없음", Address: nil},
		{ID: "S6", Name: "시만", Address: strPtr("A")},
	})
}

func TestFilterByDistrict_MatchesHandBuiltSubset(t *testing.T) {
	rows := addressFixture()

	got := FilterByDistrict(rows, "A", "B")

	ids := make(map[string]bool)
	for _, r := range got {
		ids[r.ID] = true
	}
	assert.Equal(t, map[string]bool{"S1": true, "S2": true}, ids)
}

func TestCitiesAndDistricts(t *testing.T) {
	rows := addressFixture()

	assert.Equal(t, []string{"A", "Z"}, Cities(rows))
	assert.Equal(t, []string{"B", "C"}, Districts(rows, "A"))
	assert.Empty(t, Districts(rows, "nowhere"))
}

func TestStationNamesAndFindByName(t *testing.T) {
	rows := FilterByDistrict(addressFixture(), "A", "B")

	assert.Equal(t, []string{"역삼 충전소", "삼성 충전소"}, StationNames(rows))

	row, ok := FindByName(rows, "삼성 충전소")
	require.True(t, ok)
	assert.Equal(t, "S2", row.ID)

	_, ok = FindByName(rows, "서초 충전소")
	assert.False(t, ok)
}
