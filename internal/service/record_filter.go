package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"hydromon/internal/domain"
	"hydromon/internal/repository"
)

// recordFilterParams are the raw record filters shared by listing and export.
type recordFilterParams struct {
	StationCode      string `json:"station_code"`
	Start            string `json:"start"`
	End              string `json:"end"`
	DataQuality      string `json:"data_quality"`
	CollectionMethod string `json:"collection_method"`
	DataSource       string `json:"data_source"`
}

func (p recordFilterParams) validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Start, validation.By(monitoringTimeRule)),
		validation.Field(&p.End, validation.By(monitoringTimeRule)),
		validation.Field(&p.DataQuality, validation.In(
			strconv.Itoa(int(domain.QualityNormal)),
			strconv.Itoa(int(domain.QualityAbnormal)),
			strconv.Itoa(int(domain.QualityMissing)),
		).Error("must be 1, 2 or 3")),
		validation.Field(&p.CollectionMethod, validation.In(
			string(domain.CollectionAutomatic),
			string(domain.CollectionManual),
		).Error("must be AUTO or MANUAL")),
	)
}

func monitoringTimeRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseMonitoringTime(s); err != nil {
		return errors.New("must be formatted as yyyy-MM-dd HH:mm:ss")
	}
	return nil
}

// resolveRecordFilter validates p and looks up its station.
func resolveRecordFilter(ctx context.Context, stations repository.StationRepository, p recordFilterParams) (domain.RecordFilter, error) {
	var filter domain.RecordFilter

	p.StationCode = strings.TrimSpace(p.StationCode)
	p.Start = strings.TrimSpace(p.Start)
	p.End = strings.TrimSpace(p.End)
	p.DataQuality = strings.TrimSpace(p.DataQuality)
	p.CollectionMethod = strings.ToUpper(strings.TrimSpace(p.CollectionMethod))
	p.DataSource = strings.TrimSpace(p.DataSource)

	if err := p.validate(); err != nil {
		return filter, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	if p.StationCode != "" {
		station, err := activeStation(ctx, stations, p.StationCode)
		if err != nil {
			return filter, err
		}
		filter.StationID = &station.ID
	}

	var err error
	if filter.Start, filter.End, err = timeBounds(p.Start, p.End); err != nil {
		return filter, err
	}

	if p.DataQuality != "" {
		q, _ := strconv.Atoi(p.DataQuality)
		quality := domain.Quality(q)
		filter.Quality = &quality
	}
	if p.CollectionMethod != "" {
		method := domain.CollectionMethod(p.CollectionMethod)
		filter.CollectionMethod = &method
	}
	if p.DataSource != "" {
		filter.DataSource = &p.DataSource
	}
	return filter, nil
}

// timeBounds parses already validated bounds. Empty bounds stay nil.
func timeBounds(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t, _ := domain.ParseMonitoringTime(start)
		from = &t
	}
	if end != "" {
		t, _ := domain.ParseMonitoringTime(end)
		to = &t
	}
	if from != nil && to != nil && !to.After(*from) {
		return nil, nil, fmt.Errorf("%w: end must be after start", ErrInvalidFilter)
	}
	return from, to, nil
}

// activeStation returns the active station with code, or ErrStationNotFound.
func activeStation(ctx context.Context, stations repository.StationRepository, code string) (*domain.Station, error) {
	station, err := stations.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("look up station: %w", err)
	}
	if station == nil || !station.Lifecycle.IsActive() {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, code)
	}
	return station, nil
}
