package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Storefront/types"
)

func TestActiveNotifications(t *testing.T) {
	for _, remote := range []bool{false, true} {
		ctx := context.Background()
		f := newFixture(t)
		if remote {
			f.useRemote(t)
		}

		window := func(n *types.Notification) *types.Notification {
			n.Active = true
			n.StartDate = fixedNow.Add(-time.Hour)
			n.EndDate = fixedNow.Add(time.Hour)
			return n
		}
		low := window(&types.Notification{Title: "low", Priority: 1, CreatedAt: fixedNow.Add(-time.Minute)})
		highOld := window(&types.Notification{Title: "high-old", Priority: 5, CreatedAt: fixedNow.Add(-2 * time.Hour)})
		highNew := window(&types.Notification{Title: "high-new", Priority: 5, CreatedAt: fixedNow.Add(-time.Minute)})
		expired := &types.Notification{Title: "expired", Active: true, StartDate: fixedNow.Add(-3 * time.Hour), EndDate: fixedNow.Add(-2 * time.Hour)}
		inactive := &types.Notification{Title: "inactive", StartDate: fixedNow.Add(-time.Hour), EndDate: fixedNow.Add(time.Hour)}
		for _, n := range []*types.Notification{low, highOld, highNew, expired, inactive} {
			require.NoError(t, f.svc.SaveNotification(ctx, n))
		}
		assert.Equal(t, fixedNow, inactive.CreatedAt)

		active, err := f.svc.GetActiveNotifications(ctx)
		require.NoError(t, err)
		var titles []string
		for _, n := range active {
			titles = append(titles, n.Title)
		}
		assert.Equal(t, []string{"high-new", "high-old", "low"}, titles)

		count, err := f.svc.GetUnreadNotificationCount(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)

		require.NoError(t, f.svc.MarkNotificationAsRead(ctx, highNew.ID))
		count, err = f.svc.GetUnreadNotificationCount(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		require.NoError(t, f.svc.MarkAllNotificationsAsRead(ctx))
		count, err = f.svc.GetUnreadNotificationCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		all, err := f.svc.GetAllNotifications(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 5)
		for _, n := range all {
			assert.True(t, n.Read, n.Title)
		}

		require.NoError(t, f.svc.DeleteNotification(ctx, low.ID))
		all, err = f.svc.GetAllNotifications(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	}
}

func TestSaveNotificationRejectsInvertedWindow(t *testing.T) {
	f := newFixture(t)
	err := f.svc.SaveNotification(context.Background(), &types.Notification{
		Title: "oops", StartDate: fixedNow, EndDate: fixedNow.Add(-time.Hour),
	})
	require.ErrorIs(t, err, types.ErrInvalid)
}
