package window

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/cache"
	"github.com/penwyp/go-activity-timeline/internal/core/constants"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// DayFetcher is the external collaborator that loads one day's data.
// It owns retries and error recovery; the store only ever sees a day
// that either resolves or stays loading forever.
type DayFetcher interface {
	FetchDayGrid(date model.CalendarDate) (*model.DayGrid, error)
	FetchDayScreenshots(date model.CalendarDate) ([]model.Screenshot, error)
}

// Aggregate is the derived view over the active dates, recomputed from
// whatever the fetch slots have delivered so far.
type Aggregate struct {
	LoadedDays     map[model.CalendarDate]*model.DayRecord
	TimeRange      model.TimeWindow
	AllScreenshots []model.Screenshot
	IsLoadingAny   bool
	LoadingDays    map[model.CalendarDate]struct{}
	ActiveDates    []model.CalendarDate
}

// DataWindowStore keeps the candidate pool of day records resident and
// derives the aggregate view for the active subset. Exactly
// MaxWindowDays fetch slots exist; the pool is always fully populated
// regardless of how many dates are currently active, and the aggregate
// filters down to the active ones. Fetches for dates that drop out of
// the active set run to completion and their results are retained.
type DataWindowStore struct {
	fetcher  DayFetcher
	cache    *cache.DayCache
	loc      *time.Location
	now      func() time.Time
	onChange func()

	mu         sync.Mutex
	slots      [constants.MaxWindowDays]model.CalendarDate
	inFlight   map[model.CalendarDate]bool
	candidates []model.CalendarDate
	active     []model.CalendarDate
}

// NewDataWindowStore creates a store around the given fetch
// collaborator. onChange fires after every completed day fetch and may
// be nil. now may be nil, defaulting to the configured time provider.
func NewDataWindowStore(fetcher DayFetcher, loc *time.Location, now func() time.Time, onChange func()) *DataWindowStore {
	if now == nil {
		now = util.GetTimeProvider().Now
	}
	if loc == nil {
		loc = time.Local
	}
	s := &DataWindowStore{
		fetcher:  fetcher,
		loc:      loc,
		now:      now,
		onChange: onChange,
		inFlight: make(map[model.CalendarDate]bool),
	}
	s.cache = cache.NewDayCache(func() int64 { return now().Unix() })
	return s
}

// SetWindow recomputes the candidate pool and active set for a center
// date and zoom level, evicts records that fell out of the pool, and
// fills any fetch slot whose date changed or whose record went dirty.
func (s *DataWindowStore) SetWindow(center model.CalendarDate, zoom float64) {
	today := model.DateOf(s.now().In(s.loc))
	candidates := ComputeCandidateDates(center, today)
	active := ComputeActiveDates(candidates, center, DetermineDayCount(zoom))

	s.cache.EvictOutside(candidates)

	s.mu.Lock()
	s.candidates = candidates
	s.active = active
	var launch []model.CalendarDate
	for i := range s.slots {
		if i >= len(candidates) {
			s.slots[i] = ""
			continue
		}
		date := candidates[i]
		s.slots[i] = date
		if s.inFlight[date] {
			continue
		}
		if _, ok := s.cache.Get(date); ok && !s.cache.IsDirty(date) {
			continue
		}
		s.inFlight[date] = true
		launch = append(launch, date)
	}
	s.mu.Unlock()

	for _, date := range launch {
		// Placeholder so the aggregate reports the day as loading
		if _, ok := s.cache.Get(date); !ok {
			s.cache.Set(date, &model.DayRecord{Date: date, IsLoading: true})
			s.cache.MarkDirty(date)
		}
		go s.fetchDay(date)
	}
}

// RefetchDirty re-issues fetches for pool dates whose capture files
// changed since they were loaded. Called when the file watcher reports
// activity under the capture directory.
func (s *DataWindowStore) RefetchDirty() {
	s.mu.Lock()
	var launch []model.CalendarDate
	for _, date := range s.candidates {
		if date == "" || s.inFlight[date] || !s.cache.IsDirty(date) {
			continue
		}
		s.inFlight[date] = true
		launch = append(launch, date)
	}
	s.mu.Unlock()

	for _, date := range launch {
		go s.fetchDay(date)
	}
}

// MarkDirty flags a date for refetch on the next RefetchDirty pass.
func (s *DataWindowStore) MarkDirty(date model.CalendarDate) {
	s.cache.MarkDirty(date)
}

func (s *DataWindowStore) fetchDay(date model.CalendarDate) {
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, date)
		s.mu.Unlock()
	}()

	grid, err := s.fetcher.FetchDayGrid(date)
	if err != nil {
		// The record stays loading; the fetch collaborator owns recovery.
		util.LogWarn(fmt.Sprintf("Day grid fetch failed for %s: %v", date, err))
		return
	}
	shots, err := s.fetcher.FetchDayScreenshots(date)
	if err != nil {
		util.LogWarn(fmt.Sprintf("Screenshot fetch failed for %s: %v", date, err))
		return
	}

	s.cache.Set(date, &model.DayRecord{
		Date:        date,
		Grid:        grid,
		Screenshots: shots,
	})
	util.LogDebug(fmt.Sprintf("Loaded day %s: %d screenshots", date, len(shots)))

	if s.onChange != nil {
		s.onChange()
	}
}

// Snapshot derives the aggregate view for the current active dates.
// Safe to call at any time; days whose fetches have not landed yet
// appear as loading records.
func (s *DataWindowStore) Snapshot() Aggregate {
	s.mu.Lock()
	active := make([]model.CalendarDate, len(s.active))
	copy(active, s.active)
	s.mu.Unlock()

	agg := Aggregate{
		LoadedDays:  make(map[model.CalendarDate]*model.DayRecord, len(active)),
		LoadingDays: make(map[model.CalendarDate]struct{}),
		ActiveDates: active,
	}
	if len(active) == 0 {
		return agg
	}

	for _, date := range active {
		record, ok := s.cache.Get(date)
		if !ok {
			record = &model.DayRecord{Date: date, IsLoading: true}
		}
		agg.LoadedDays[date] = record
		if record.IsLoading {
			agg.LoadingDays[date] = struct{}{}
			agg.IsLoadingAny = true
			continue
		}
		agg.AllScreenshots = append(agg.AllScreenshots, record.Screenshots...)
	}

	sort.SliceStable(agg.AllScreenshots, func(i, j int) bool {
		return agg.AllScreenshots[i].Timestamp < agg.AllScreenshots[j].Timestamp
	})

	now := s.now().In(s.loc)
	earliest, latest := active[0], active[len(active)-1]
	agg.TimeRange = model.TimeWindow{
		Start: earliest.StartOfDay(s.loc).Unix(),
		End:   latest.EndOfDay(s.loc).Unix(),
	}
	if latest == model.DateOf(now) && agg.TimeRange.End > now.Unix() {
		agg.TimeRange.End = now.Unix()
	}
	return agg
}
