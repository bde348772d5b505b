package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tick/internal/domain"
)

func TestListCmd(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		mockWorkflow := withMockWorkflow(t)
		mockWorkflow.On("List", domain.ListArgs{
			Project:  "work",
			Context:  "office",
			Priority: "A",
			Undone:   true,
		}).Return(nil)

		err := execute(t, "list", "-p", "work", "-c", "office", "-P", "A", "--undone")
		require.NoError(t, err)
	})

	t.Run("no filters by default", func(t *testing.T) {
		mockWorkflow := withMockWorkflow(t)
		mockWorkflow.On("List", domain.ListArgs{}).Return(nil)

		err := execute(t, "list", "-p", "", "-c", "", "-P", "", "--undone=false")
		require.NoError(t, err)
	})
}
