package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// The message types are maintained by hand, so this guards the struct tags:
// a wrong field number or wire type would corrupt requests silently.
func TestWill_WireRoundTrip(t *testing.T) {
	in := &Will{
		Id:    "w-1",
		Owner: "0x1111111111111111111111111111111111111111",
		Beneficiaries: []*Beneficiary{
			{Address: "0x2222222222222222222222222222222222222222", Percentage: 62.5, Name: "B", Email: "b@example.com"},
		},
		InactivitySeconds: 3600,
		LastActivityUnix:  1748779200,
		DeadlineUnix:      1748782800,
		PersonalMessage:   "be kind",
		Status:            "active",
		HasAttachment:     true,
		CreatedAtUnix:     1748779200,
	}

	raw, err := proto.Marshal(protoadapt.MessageV2Of(in))
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	out := &Will{}
	require.NoError(t, proto.Unmarshal(raw, protoadapt.MessageV2Of(out)))

	assert.Equal(t, in.Id, out.Id)
	assert.Equal(t, in.Owner, out.Owner)
	require.Len(t, out.Beneficiaries, 1)
	assert.Equal(t, in.Beneficiaries[0].Percentage, out.Beneficiaries[0].Percentage)
	assert.Equal(t, in.Beneficiaries[0].Email, out.Beneficiaries[0].Email)
	assert.Equal(t, in.InactivitySeconds, out.InactivitySeconds)
	assert.Equal(t, in.DeadlineUnix, out.DeadlineUnix)
	assert.Equal(t, in.PersonalMessage, out.PersonalMessage)
	assert.Equal(t, in.Status, out.Status)
	assert.True(t, out.HasAttachment)
}
