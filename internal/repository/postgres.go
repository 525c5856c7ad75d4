package repository

import (
	"context"
	"errors"
	"fmt"

	"evcharge-dashboard/internal/models"

	"github.com/jackc/pgx/v5"
)

// Repository runs the dashboard's read queries against PostgreSQL.
// Every load opens its own connection and closes it before returning.
type Repository struct {
	connector Connector
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(connector Connector) *Repository {
	return &Repository{connector: connector}
}

const summarySQL = `
	SELECT
		r.zname AS region,
		COUNT(DISTINCT s.stat_id) AS station_count,
		e.vehicle_count
	FROM stations s
	JOIN region_map r ON s.zcode = r.zcode
	JOIN ev_registered_yearly e ON r.zname = e.zname
	WHERE e.year = $1
	GROUP BY r.zname, e.vehicle_count
	ORDER BY r.zname
`

const addressesSQL = `
	SELECT stat_id, stat_nm, addr, lat, lng
	FROM stations
	ORDER BY id
`

const stationDetailSQL = `
	SELECT
		stat_id,
		chger_id,
		stat_nm,
		addr,
		busi_nm,
		install_year,
		use_time,
		parking_free,
		limit_yn,
		limit_detail,
		note,
		del_yn,
		stat_upd_dt,
		lat,
		lng,
		zcode
	FROM stations
	WHERE stat_id = $1
	ORDER BY id
	LIMIT 1
`

// LoadSummary counts distinct stations per region for regions that have a registration row in year.
// The coverage ratio is left for the caller to derive.
func (r *Repository) LoadSummary(ctx context.Context, year int) ([]models.RegionSummary, error) {
	conn, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, summarySQL, year)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute summary query: %w", err)
	}
	defer rows.Close()

	summaries := []models.RegionSummary{}
	for rows.Next() {
		var s models.RegionSummary
		if err := rows.Scan(&s.Region, &s.StationCount, &s.VehicleCount); err != nil {
			return nil, fmt.Errorf("repository: failed to scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return summaries, nil
}

// LoadAllAddresses returns id, name, address and coordinates of every station row
func (r *Repository) LoadAllAddresses(ctx context.Context) ([]models.StationAddress, error) {
	conn, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, addressesSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute address query: %w", err)
	}
	defer rows.Close()

	addresses := []models.StationAddress{}
	for rows.Next() {
		var a models.StationAddress
		if err := rows.Scan(&a.ID, &a.Name, &a.Address, &a.Latitude, &a.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return addresses, nil
}

// LoadStationDetail returns the first row for the station id, or nil when there is none.
func (r *Repository) LoadStationDetail(ctx context.Context, id string) (*models.Station, error) {
	conn, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	var s models.Station
	err = conn.QueryRow(ctx, stationDetailSQL, id).Scan(
		&s.ID,
		&s.ChargerID,
		&s.Name,
		&s.Address,
		&s.Operator,
		&s.InstallYear,
		&s.UseTime,
		&s.ParkingFree,
		&s.LimitYn,
		&s.LimitDetail,
		&s.Note,
		&s.DelYn,
		&s.StatUpdateAt,
		&s.Latitude,
		&s.Longitude,
		&s.ZCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load station detail: %w", err)
	}

	return &s, nil
}
