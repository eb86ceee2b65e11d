package gameinput_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/gameinput"
	"github.com/aretw0/gameinput/pkg/domain"
)

// Example shows a scripted session: one bad coordinate, then a good one.
func Example() {
	p := gameinput.New(
		gameinput.WithInput(strings.NewReader("3,12\n3,4\n")),
		gameinput.WithOutput(os.Stdout),
	)

	xy, err := gameinput.MultiNumber(context.Background(), p,
		"YOUR SHOT (X,Y)", ",", domain.Exactly(2), domain.Between(1, 10))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(xy)

	// Output:
	// YOUR SHOT (X,Y)
	// NUMBER MUST BE WITHIN 1 AND 10
	// YOUR SHOT (X,Y)
	// [3 4]
}
