package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloSnippet = `package main

import "fmt"

func main() {
	fmt.Println("hello from the sandbox")
}
`

func TestRun_CapturesStdout(t *testing.T) {
	r := New(5*time.Second, nil)
	res, err := r.Run(context.Background(), helloSnippet)
	require.NoError(t, err)
	assert.Equal(t, "hello from the sandbox\n", res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.Greater(t, res.Duration, time.Duration(0))
}

func TestRun_MultiplePackages(t *testing.T) {
	src := `package main

import (
	"fmt"
	"sort"
	"strings"
)

func main() {
	words := []string{"gamma", "alpha", "beta"}
	sort.Strings(words)
	fmt.Println(strings.Join(words, ", "))
}
`
	r := New(5*time.Second, nil)
	res, err := r.Run(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "alpha, beta, gamma\n", res.Stdout)
}

func TestRun_ForbiddenImport(t *testing.T) {
	src := `package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println(os.Getpid())
}
`
	r := New(5*time.Second, nil)
	_, err := r.Run(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden imports: os")
}

func TestRun_ExtraPackagesExtendWhitelist(t *testing.T) {
	src := `package main

import (
	"fmt"
	"unicode"
)

func main() {
	fmt.Println(unicode.IsUpper('A'))
}
`
	r := New(5*time.Second, nil)
	_, err := r.Run(context.Background(), src)
	require.Error(t, err)

	r = New(5*time.Second, []string{"unicode"})
	res, err := r.Run(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "true\n", res.Stdout)
}

func TestRun_NoMainFunction(t *testing.T) {
	src := `package main

import "fmt"

func greet() {
	fmt.Println("hi")
}
`
	r := New(5*time.Second, nil)
	_, err := r.Run(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no main function")
}

func TestRun_SyntaxError(t *testing.T) {
	src := `package main

func main() {
	fmt.Println("unbalanced"
}
`
	r := New(5*time.Second, nil)
	_, err := r.Run(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not evaluate")
}

func TestRun_Panic(t *testing.T) {
	src := `package main

func main() {
	panic("boom")
}
`
	r := New(5*time.Second, nil)
	_, err := r.Run(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestRun_Timeout(t *testing.T) {
	src := `package main

import "time"

func main() {
	time.Sleep(10 * time.Second)
}
`
	r := New(100*time.Millisecond, nil)
	start := time.Now()
	_, err := r.Run(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(0, nil)
	_, err := r.Run(ctx, helloSnippet)
	// A pre-cancelled context either aborts the wait or the snippet wins the
	// race and finishes; both are acceptable, a hang is not.
	if err != nil {
		assert.Contains(t, err.Error(), "timed out")
	}
}

func TestScanImports(t *testing.T) {
	src := `package main

import (
	"fmt"
	str "strings"
)

import "sort"

func main() {}
`
	assert.ElementsMatch(t, []string{"fmt", "strings", "sort"}, scanImports(src))
}

func TestScanImports_IgnoresCommentsInBlock(t *testing.T) {
	src := `package main

import (
	// stdlib only
	"fmt"

	"sort" // for ordering
)

func main() {}
`
	assert.ElementsMatch(t, []string{"fmt", "sort"}, scanImports(src))
}

func TestRun_CommentedImportBlock(t *testing.T) {
	src := `package main

import (
	// stdlib only
	"fmt"
)

func main() {
	fmt.Println("commented block")
}
`
	r := New(5*time.Second, nil)
	res, err := r.Run(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "commented block\n", res.Stdout)
}
