package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	s := NewService()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bearer header",
			in:   "Authorization: Bearer abcdef1234567890",
			want: "Authorization: Bearer ***MASKED***",
		},
		{
			name: "json access token",
			in:   `{"access_token":"ya29.a0AfH6SMB","scope":"calendar.read"}`,
			want: `{"access_token":"***MASKED***","scope":"calendar.read"}`,
		},
		{
			name: "key value pair",
			in:   "retry failed api_key=sk-12345 status=401",
			want: "retry failed api_key=***MASKED*** status=401",
		},
		{
			name: "notion integration secret",
			in:   "token secret_0123456789abcdefghij1234 rejected",
			want: "token ***MASKED*** rejected",
		},
		{
			name: "email address",
			in:   "assignee kim.dev@example.com not found",
			want: "assignee ***EMAIL*** not found",
		},
		{
			name: "clean text untouched",
			in:   "2개 작업 실행 완료",
			want: "2개 작업 실행 완료",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Mask(tt.in))
		})
	}
}
