package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"schedule-server/api/sheets"
	"schedule-server/dao/memory"
	"schedule-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSheetsAPI returns canned values or an error and records the
// credentials of each fetch.
type stubSheetsAPI struct {
	response *models.SheetValuesResponse
	err      error

	mu      sync.Mutex
	fetches []fetchCall
}

type fetchCall struct {
	spreadsheetID string
	creds         sheets.Credentials
}

func (s *stubSheetsAPI) GetValues(spreadsheetID, valueRange string, creds sheets.Credentials) (*models.SheetValuesResponse, error) {
	s.mu.Lock()
	s.fetches = append(s.fetches, fetchCall{spreadsheetID: spreadsheetID, creds: creds})
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func TestNormalizeRows_DropsHeader(t *testing.T) {
	svc := NewSyncService(memory.NewMemoryScheduleDAO(), &stubSheetsAPI{})

	records, err := svc.NormalizeRows([][]string{
		{"Name", "Analyst", "Login", "Off"},
		{"A", "B", "9:00 AM", "Sunday"},
	}, true)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.RosterRecord{
		TeamMember: "A", Analyst: "B", LoginTime: "9:00 AM", TimeOffs: "Sunday",
	}, records[0])
}

func TestNormalizeRows_HeaderOnlyIsEmptyData(t *testing.T) {
	svc := NewSyncService(memory.NewMemoryScheduleDAO(), &stubSheetsAPI{})

	_, err := svc.NormalizeRows([][]string{{"h1", "h2", "h3", "h4"}}, true)
	require.Error(t, err)

	var emptyErr *models.EmptyDataError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestNormalizeRows_NoHeaderMode(t *testing.T) {
	svc := NewSyncService(memory.NewMemoryScheduleDAO(), &stubSheetsAPI{})

	records, err := svc.NormalizeRows([][]string{{"A", "B", "9:00 AM", ""}}, false)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.NormalizeRows([][]string{}, false)
	var emptyErr *models.EmptyDataError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestNormalizeRows_PadsShortRows(t *testing.T) {
	svc := NewSyncService(memory.NewMemoryScheduleDAO(), &stubSheetsAPI{})

	records, err := svc.NormalizeRows([][]string{
		{"header"},
		{"A", "B"},
	}, true)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].LoginTime)
	assert.Equal(t, "", records[0].TimeOffs)
}

func TestValidateRecords(t *testing.T) {
	svc := NewSyncService(memory.NewMemoryScheduleDAO(), &stubSheetsAPI{})

	tests := []struct {
		name      string
		record    models.RosterRecord
		wantField string
	}{
		{
			name:      "missing team member",
			record:    models.RosterRecord{Analyst: "B", LoginTime: "9:00 AM"},
			wantField: "teamMember",
		},
		{
			name:      "missing analyst",
			record:    models.RosterRecord{TeamMember: "A", LoginTime: "9:00 AM"},
			wantField: "analyst",
		},
		{
			name:      "malformed login time",
			record:    models.RosterRecord{TeamMember: "A", Analyst: "B", LoginTime: "99:00 XM"},
			wantField: "loginTime",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := svc.ValidateRecords([]models.RosterRecord{test.record})
			require.Error(t, err)

			var valErr *models.ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, 0, valErr.Row)
			assert.Equal(t, test.wantField, valErr.Field)
		})
	}

	// Time-offs may be empty.
	err := svc.ValidateRecords([]models.RosterRecord{
		{TeamMember: "A", Analyst: "B", LoginTime: "9:00 AM", TimeOffs: ""},
	})
	assert.NoError(t, err)
}

func TestSyncFromSheets_Success(t *testing.T) {
	store := memory.NewMemoryScheduleDAO()
	stub := &stubSheetsAPI{response: &models.SheetValuesResponse{
		Values: [][]string{
			{"Team Member", "Analyst", "Login Time", "Time Offs"},
			{"Alice", "Bob Lee", "10:00 AM", "Monday"},
			{"Carol", "Bob Lee", "12:00 PM", ""},
		},
	}}
	svc := NewSyncService(store, stub)

	count, err := svc.SyncFromSheets("sheet-1", "key-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, stub.fetches, 1)
	assert.Equal(t, sheets.Credentials{APIKey: "key-1"}, stub.fetches[0].creds)

	members, err := store.GetTeamMembers()
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestSyncFromSheets_ConcurrentSyncsKeepOwnKey(t *testing.T) {
	stub := &stubSheetsAPI{response: &models.SheetValuesResponse{
		Values: [][]string{
			{"Team Member", "Analyst", "Login Time", "Time Offs"},
			{"Alice", "Bob Lee", "10:00 AM", ""},
		},
	}}
	svc := NewSyncService(memory.NewMemoryScheduleDAO(), stub)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sheet := fmt.Sprintf("sheet-%d", i)
			key := fmt.Sprintf("key-%d", i)
			for j := 0; j < 20; j++ {
				if _, err := svc.SyncFromSheets(sheet, key); err != nil {
					t.Errorf("sync of %s: %v", sheet, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	// Every fetch must carry the key of the sync that issued it.
	for _, call := range stub.fetches {
		wantKey := "key" + call.spreadsheetID[len("sheet"):]
		assert.Equal(t, wantKey, call.creds.APIKey, "fetch for %s", call.spreadsheetID)
	}
}

func TestSyncFromSheets_FetchErrorLeavesRosterIntact(t *testing.T) {
	store := memory.NewMemoryScheduleDAO()
	require.NoError(t, store.Replace([]models.RosterRecord{
		{TeamMember: "Keep", Analyst: "Me", LoginTime: "10:00 AM"},
	}))

	stub := &stubSheetsAPI{err: &models.UpstreamFetchError{Status: "403 Forbidden"}}
	svc := NewSyncService(store, stub)

	_, err := svc.SyncFromSheets("sheet-1", "key-1")
	require.Error(t, err)

	members, _ := store.GetTeamMembers()
	require.Len(t, members, 1)
	assert.Equal(t, "Keep", members[0].TeamMember)
}

func TestSyncRecords_ValidationErrorLeavesRosterIntact(t *testing.T) {
	store := memory.NewMemoryScheduleDAO()
	require.NoError(t, store.Replace([]models.RosterRecord{
		{TeamMember: "Keep", Analyst: "Me", LoginTime: "10:00 AM"},
	}))
	svc := NewSyncService(store, &stubSheetsAPI{})

	_, err := svc.SyncRecords([]models.RosterRecord{
		{TeamMember: "New", Analyst: "Boss", LoginTime: "not a time"},
	})
	require.Error(t, err)

	var valErr *models.ValidationError
	assert.True(t, errors.As(err, &valErr))

	members, _ := store.GetTeamMembers()
	require.Len(t, members, 1)
	assert.Equal(t, "Keep", members[0].TeamMember)
}
