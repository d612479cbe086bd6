package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    GroupType
		wantErr bool
	}{
		{name: "teams", input: "Teams", want: GroupTypeTeams},
		{name: "external", input: "External", want: GroupTypeExternal},
		{name: "wrong case", input: "teams", wantErr: true},
		{name: "unknown", input: "Slack", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewGroupType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMatchingFrequency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MatchingFrequency
		wantErr bool
	}{
		{name: "weekly", input: "Weekly", want: FrequencyWeekly},
		{name: "monthly", input: "Monthly", want: FrequencyMonthly},
		{name: "daily not supported", input: "Daily", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMatchingFrequency(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewApprovalStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ApprovalStatus
		wantErr bool
	}{
		{name: "pending", input: "Pending", want: ApprovalPending},
		{name: "approved", input: "Approved", want: ApprovalApproved},
		{name: "rejected", input: "Rejected", want: ApprovalRejected},
		{name: "unknown", input: "Archived", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewApprovalStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupTypeScan(t *testing.T) {
	var gt GroupType
	require.NoError(t, gt.Scan("Teams"))
	assert.Equal(t, GroupTypeTeams, gt)

	require.NoError(t, gt.Scan([]byte("External")))
	assert.Equal(t, GroupTypeExternal, gt)

	assert.Error(t, gt.Scan(nil))
	assert.Error(t, gt.Scan(42))
	assert.Error(t, gt.Scan("Slack"))
}

func TestApprovalStatusValue(t *testing.T) {
	v, err := ApprovalApproved.Value()
	require.NoError(t, err)
	assert.Equal(t, "Approved", v)

	_, err = ApprovalStatus("Archived").Value()
	assert.Error(t, err)
}
