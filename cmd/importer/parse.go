package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// statUpdateLayouts are the accepted stat_upd_dt formats, compact first.
var statUpdateLayouts = []string{"20060102150405", "2006-01-02 15:04:05"}

// StationRecord is one charger row of the stations CSV.
type StationRecord struct {
	StatID      string
	ChargerID   *string
	Name        string
	Address     *string
	Operator    *string
	InstallYear *string
	UseTime     *string
	ParkingFree *string
	LimitYn     *string
	LimitDetail *string
	Note        *string
	DelYn       *string
	StatUpdDt   *time.Time
	Lat         float64
	Lng         float64
	ZCode       *string
}

// RegionRecord maps an area code to its region name.
type RegionRecord struct {
	ZCode string
	ZName string
}

// RegistrationRecord is a yearly registered-vehicle count for a region.
type RegistrationRecord struct {
	ZName        string
	Year         int
	VehicleCount int
}

// table is a CSV body indexed by header name.
type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(r io.Reader, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	t := &table{columns: make(map[string]int, len(header))}
	for i, name := range header {
		t.columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range required {
		if _, ok := t.columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func (t *table) value(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) optional(row []string, column string) *string {
	v := t.value(row, column)
	if v == "" {
		return nil
	}
	return &v
}

func parseStations(r io.Reader) ([]StationRecord, error) {
	t, err := readTable(r, "stat_id", "stat_nm", "lat", "lng")
	if err != nil {
		return nil, err
	}

	records := make([]StationRecord, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2

		lat, err := strconv.ParseFloat(t.value(row, "lat"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %q", line, t.value(row, "lat"))
		}
		lng, err := strconv.ParseFloat(t.value(row, "lng"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %q", line, t.value(row, "lng"))
		}

		var updated *time.Time
		if raw := t.value(row, "stat_upd_dt"); raw != "" {
			ts, err := parseStatUpdate(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			updated = &ts
		}

		statID := t.value(row, "stat_id")
		if statID == "" {
			return nil, fmt.Errorf("line %d: empty stat_id", line)
		}

		records = append(records, StationRecord{
			StatID:      statID,
			ChargerID:   t.optional(row, "chger_id"),
			Name:        t.value(row, "stat_nm"),
			Address:     t.optional(row, "addr"),
			Operator:    t.optional(row, "busi_nm"),
			InstallYear: t.optional(row, "install_year"),
			UseTime:     t.optional(row, "use_time"),
			ParkingFree: t.optional(row, "parking_free"),
			LimitYn:     t.optional(row, "limit_yn"),
			LimitDetail: t.optional(row, "limit_detail"),
			Note:        t.optional(row, "note"),
			DelYn:       t.optional(row, "del_yn"),
			StatUpdDt:   updated,
			Lat:         lat,
			Lng:         lng,
			ZCode:       t.optional(row, "zcode"),
		})
	}
	return records, nil
}

func parseStatUpdate(raw string) (time.Time, error) {
	for _, layout := range statUpdateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid stat_upd_dt: %q", raw)
}

func parseRegions(r io.Reader) ([]RegionRecord, error) {
	t, err := readTable(r, "zcode", "zname")
	if err != nil {
		return nil, err
	}

	records := make([]RegionRecord, 0, len(t.rows))
	for i, row := range t.rows {
		code, name := t.value(row, "zcode"), t.value(row, "zname")
		if code == "" || name == "" {
			return nil, fmt.Errorf("line %d: zcode and zname are required", i+2)
		}
		records = append(records, RegionRecord{ZCode: code, ZName: name})
	}
	return records, nil
}

func parseRegistrations(r io.Reader) ([]RegistrationRecord, error) {
	t, err := readTable(r, "zname", "year", "vehicle_count")
	if err != nil {
		return nil, err
	}

	records := make([]RegistrationRecord, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		year, err := strconv.Atoi(t.value(row, "year"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid year: %q", line, t.value(row, "year"))
		}
		count, err := strconv.Atoi(strings.ReplaceAll(t.value(row, "vehicle_count"), ",", ""))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vehicle_count: %q", line, t.value(row, "vehicle_count"))
		}
		records = append(records, RegistrationRecord{ZName: t.value(row, "zname"), Year: year, VehicleCount: count})
	}
	return records, nil
}

func parseFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
