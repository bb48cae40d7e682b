package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

// blockingGenerator holds every call until release is closed.
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingGenerator) Generate(ctx context.Context, _ string) (string, error) {
	close(b.started)
	select {
	case <-b.release:
		return "slow soup", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestGenerateRecipe_EmptyQueryDoesNotCallGenerator(t *testing.T) {
	gen := &fakeGenerator{text: "anything"}
	r := NewRequester(gen, nil)

	text, err := r.GenerateRecipe(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Empty(t, gen.prompts)
}

func TestGenerateRecipe_Success(t *testing.T) {
	gen := &fakeGenerator{text: "Tomato soup: simmer tomatoes."}
	r := NewRequester(gen, nil)

	text, err := r.GenerateRecipe(context.Background(), "tomato")

	require.NoError(t, err)
	assert.Equal(t, "Tomato soup: simmer tomatoes.", text)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, Prompt("tomato"), gen.prompts[0])
	assert.Contains(t, gen.prompts[0], "tomato")
}

func TestGenerateRecipe_Failures(t *testing.T) {
	quota := errors.New("quota exceeded")

	tests := []struct {
		name    string
		gen     Generator
		wantErr error
	}{
		{"collaborator error", &fakeGenerator{err: quota}, quota},
		{"empty response", &fakeGenerator{text: "  \n"}, ErrEmptyResponse},
		{"not configured", Disabled{}, ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequester(tt.gen, nil).GenerateRecipe(context.Background(), "rice")

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, "rice", genErr.Query)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPanel_KeepsPreviousRecipeOnFailure(t *testing.T) {
	gen := &fakeGenerator{text: "Fried rice"}
	p := NewPanel(NewRequester(gen, nil), nil)
	ctx := context.Background()

	text, err := p.Request(ctx, "rice")
	require.NoError(t, err)
	assert.Equal(t, "Fried rice", text)

	gen.text, gen.err = "", errors.New("network")
	_, err = p.Request(ctx, "beans")

	require.Error(t, err)
	assert.Equal(t, "Fried rice", p.Recipe())
	assert.Equal(t, "rice", p.Query())
	assert.False(t, p.Loading())
}

func TestPanel_OverwritesRecipe(t *testing.T) {
	gen := &fakeGenerator{text: "Fried rice"}
	p := NewPanel(NewRequester(gen, nil), nil)
	ctx := context.Background()

	_, err := p.Request(ctx, "rice")
	require.NoError(t, err)

	gen.text = "Bean chili"
	_, err = p.Request(ctx, "beans")
	require.NoError(t, err)

	assert.Equal(t, "Bean chili", p.Recipe())
}

func TestPanel_EmptyQueryIsIgnored(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	p := NewPanel(NewRequester(gen, nil), nil)

	text, err := p.Request(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Empty(t, gen.prompts)
}

func TestPanel_LoadingWhilePending(t *testing.T) {
	gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	p := NewPanel(NewRequester(gen, nil), nil)

	done := make(chan error, 1)
	go func() {
		_, err := p.Request(context.Background(), "lentils")
		done <- err
	}()

	<-gen.started
	assert.True(t, p.Loading())

	close(gen.release)
	require.NoError(t, <-done)
	assert.False(t, p.Loading())
	assert.Equal(t, "slow soup", p.Recipe())
}
