package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"evcharge-dashboard/internal/config"
	"evcharge-dashboard/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	stationsFile := flag.String("stations", "", "Path to the stations CSV file")
	regionsFile := flag.String("regions", "", "Path to the region map CSV file")
	registrationsFile := flag.String("registrations", "", "Path to the yearly EV registrations CSV file")
	replace := flag.Bool("replace", false, "Truncate the target tables before importing")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *stationsFile == "" && *regionsFile == "" && *registrationsFile == "" {
		log.Fatal().Msg("at least one of --stations, --regions or --registrations is required")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := database.RunMigrations(cfg.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot run migrations")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if *regionsFile != "" {
		records, err := parseFile(*regionsFile, parseRegions)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot parse regions")
		}
		importTable(ctx, conn, "region_map", []string{"zcode", "zname"}, *replace, len(records), func(i int) []any {
			r := records[i]
			return []any{r.ZCode, r.ZName}
		})
	}

	if *registrationsFile != "" {
		records, err := parseFile(*registrationsFile, parseRegistrations)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot parse registrations")
		}
		importTable(ctx, conn, "ev_registered_yearly", []string{"zname", "year", "vehicle_count"}, *replace, len(records), func(i int) []any {
			r := records[i]
			return []any{r.ZName, r.Year, r.VehicleCount}
		})
	}

	if *stationsFile != "" {
		records, err := parseFile(*stationsFile, parseStations)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot parse stations")
		}
		importTable(ctx, conn, "stations", stationColumns, *replace, len(records), func(i int) []any {
			return records[i].values()
		})
	}
}

var stationColumns = []string{
	"stat_id", "chger_id", "stat_nm", "addr", "busi_nm", "install_year", "use_time",
	"parking_free", "limit_yn", "limit_detail", "note", "del_yn", "stat_upd_dt", "lat", "lng", "zcode",
}

func (r StationRecord) values() []any {
	return []any{
		r.StatID, r.ChargerID, r.Name, r.Address, r.Operator, r.InstallYear, r.UseTime,
		r.ParkingFree, r.LimitYn, r.LimitDetail, r.Note, r.DelYn, r.StatUpdDt, r.Lat, r.Lng, r.ZCode,
	}
}

func importTable(ctx context.Context, conn *pgx.Conn, table string, columns []string, replace bool, n int, row func(int) []any) {
	logger := log.With().Str("table", table).Logger()
	logger.Info().Int("records", n).Msg("starting import")

	err := pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		if replace {
			if _, err := tx.Exec(ctx, "TRUNCATE "+pgx.Identifier{table}.Sanitize()); err != nil {
				return fmt.Errorf("failed to truncate: %w", err)
			}
		}
		copied, err := insertRecords(ctx, tx, table, columns, n, row)
		if err != nil {
			return err
		}
		return verifyImport(ctx, tx, table, copied, replace)
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("import failed")
	}

	logger.Info().Int("records", n).Msg("successfully imported")
}

func insertRecords(ctx context.Context, tx pgx.Tx, table string, columns []string, n int, row func(int) []any) (int64, error) {
	// Use CopyFrom for bulk insert
	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{table},
		columns,
		pgx.CopyFromSlice(n, func(i int) ([]any, error) {
			return row(i), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy records: %w", err)
	}
	return copied, nil
}

func verifyImport(ctx context.Context, tx pgx.Tx, table string, copied int64, replace bool) error {
	var count int64
	err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if replace && count != copied {
		return fmt.Errorf("record count mismatch: expected %d, got %d", copied, count)
	}
	if count < copied {
		return fmt.Errorf("record count mismatch: copied %d, table has %d", copied, count)
	}
	return nil
}
