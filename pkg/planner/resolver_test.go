package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveServices(t *testing.T) {
	reg := fixtureRegistry(t)

	t.Run("korean service mentions", func(t *testing.T) {
		services := ResolveServices(reg, "노션에 페이지 만들어줘", []string{"notion", "linear"}, 3)
		assert.Equal(t, []string{"notion"}, services)
	})

	t.Run("two services ranked", func(t *testing.T) {
		services := ResolveServices(reg,
			"Linear의 이슈를 찾아서 Notion의 새로운 페이지에 저장하세요",
			[]string{"linear", "notion"}, 3)
		assert.ElementsMatch(t, []string{"linear", "notion"}, services)
	})

	t.Run("restricted to connected", func(t *testing.T) {
		services := ResolveServices(reg, "노션과 스포티파이", []string{"notion"}, 3)
		assert.Equal(t, []string{"notion"}, services)
	})

	t.Run("single connected service default", func(t *testing.T) {
		services := ResolveServices(reg, "do the thing", []string{"linear"}, 3)
		assert.Equal(t, []string{"linear"}, services)
	})

	t.Run("max services cap", func(t *testing.T) {
		services := ResolveServices(reg,
			"노션 페이지와 리니어 이슈와 구글 캘린더 일정",
			[]string{"notion", "linear", "google"}, 2)
		assert.Len(t, services, 2)
	})

	t.Run("no connected no match", func(t *testing.T) {
		services := ResolveServices(reg, "hello", nil, 3)
		assert.Empty(t, services)
	})
}
