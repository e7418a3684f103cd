package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/Dafi-web/events-sub000/domain"
)

func TestComment_Kind(t *testing.T) {
	topLevel := &domain.Comment{ID: "c1"}
	reply := &domain.Comment{ID: "c2", ParentID: "c1"}

	assert.Equal(t, domain.CommentKindTopLevel, topLevel.Kind())
	assert.True(t, topLevel.IsTopLevel())
	assert.Equal(t, domain.CommentKindReply, reply.Kind())
	assert.False(t, reply.IsTopLevel())
}

func TestComment_ContentRef(t *testing.T) {
	c := &domain.Comment{ContentType: domain.ContentTypeNews, ContentID: "n1"}

	assert.Equal(t, domain.ContentRef{Type: domain.ContentTypeNews, ID: "n1"}, c.ContentRef())
	assert.Equal(t, "news:n1", c.ContentRef().String())
}

func TestModerationAction_Transition(t *testing.T) {
	testCases := []struct {
		action       domain.ModerationAction
		expectedFrom []domain.CommentStatus
		expectedTo   domain.CommentStatus
		expectedOK   bool
	}{
		{
			action:       domain.ModerationActionHide,
			expectedFrom: []domain.CommentStatus{domain.CommentStatusActive},
			expectedTo:   domain.CommentStatusHidden,
			expectedOK:   true,
		},
		{
			action:       domain.ModerationActionDelete,
			expectedFrom: []domain.CommentStatus{domain.CommentStatusActive, domain.CommentStatusHidden},
			expectedTo:   domain.CommentStatusDeleted,
			expectedOK:   true,
		},
		{
			action:       domain.ModerationActionRestore,
			expectedFrom: []domain.CommentStatus{domain.CommentStatusHidden},
			expectedTo:   domain.CommentStatusActive,
			expectedOK:   true,
		},
		{
			action: "purge",
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.action), func(t *testing.T) {
			from, to, ok := tc.action.Transition()

			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedTo, to)
			if diff := cmp.Diff(tc.expectedFrom, from); diff != "" {
				t.Errorf("unexpected source statuses (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("deleted is terminal", func(t *testing.T) {
		for _, action := range []domain.ModerationAction{
			domain.ModerationActionHide,
			domain.ModerationActionDelete,
			domain.ModerationActionRestore,
		} {
			from, _, _ := action.Transition()
			assert.NotContains(t, from, domain.CommentStatusDeleted, action)
		}
	})
}

func TestReactionTarget(t *testing.T) {
	assert.True(t, domain.ReactionLike.IsToggleable())
	assert.True(t, domain.ReactionDislike.IsToggleable())
	assert.False(t, domain.ReactionNone.IsToggleable())

	contentTarget := domain.ContentTarget(domain.ContentRef{Type: domain.ContentTypeEvent, ID: "e1"})
	if diff := cmp.Diff(domain.ReactionTarget{Type: "event", ID: "e1"}, contentTarget); diff != "" {
		t.Errorf("unexpected content target (-want +got):\n%s", diff)
	}
	assert.True(t, contentTarget.IsValid())
	assert.True(t, domain.CommentTarget("c1").IsValid())
	assert.False(t, domain.CommentTarget("").IsValid())
	assert.False(t, domain.ReactionTarget{Type: "podcast", ID: "p1"}.IsValid())
}
