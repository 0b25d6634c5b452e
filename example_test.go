package guard_test

import (
	stderrors "errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jmgilman/go/guard"
	"github.com/jmgilman/go/guard/errors"
	"github.com/jmgilman/go/guard/optional"
)

func ExampleGuard_Reverse() {
	g := guard.New()

	s, _ := g.Reverse(optional.Of("hello"))
	fmt.Println(s)

	_, err := g.Reverse(optional.None[string]())
	fmt.Println(err)
	// Output:
	// olleh
	// [NULL_INPUT] text must not be absent
}

func ExampleGuard_CalculateDiscount() {
	g := guard.New()

	amount, _ := g.CalculateDiscount(decimal.NewFromInt(100), decimal.NewFromInt(50))
	fmt.Println(amount)

	_, err := g.CalculateDiscount(decimal.NewFromInt(100), decimal.NewFromInt(110))
	fmt.Println(errors.GetCode(err))
	// Output:
	// 50
	// INVALID_ARGUMENT
}

func ExampleGuard_SumCollectionElements() {
	g := guard.New()

	sum, _ := g.SumCollectionElements(optional.Of([]int{1, 2, 3, 4}), 3)
	fmt.Println(sum)

	_, err := g.SumCollectionElements(optional.Of([]int{1, 2, 3, 4}), 4)
	fmt.Println(stderrors.Is(err, guard.ErrIndexOutOfRange))
	// Output:
	// 10
	// true
}

func ExampleGuard_GetElementAsNumber() {
	g := guard.New()
	people := map[string]string{"Galina": "11", "Karina": "Gospodinova"}

	for _, key := range []string{"Galina", "Karina", "Georgi"} {
		n, err := g.GetElementAsNumber(people, key)
		switch errors.GetCode(err) {
		case errors.CodeKeyNotFound:
			fmt.Printf("%s: missing\n", key)
		case errors.CodeFormat:
			fmt.Printf("%s: not a number\n", key)
		default:
			fmt.Printf("%s: %d\n", key, n)
		}
	}
	// Output:
	// Galina: 11
	// Karina: not a number
	// Georgi: missing
}

func ExampleGuard_AddNumbers() {
	g := guard.New()

	sum, _ := g.AddNumbers(10, 1)
	fmt.Println(sum)

	_, err := g.AddNumbers(math.MaxInt, 1)
	fmt.Println(errors.GetCode(err))
	// Output:
	// 11
	// OVERFLOW
}
