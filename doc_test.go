package tst

import "fmt"

func Example() {
	t := New()
	t.Insert("abc", "cat", "a", "", "b")

	fmt.Println(t.Search("abc", false))
	fmt.Println(t.Search("a", true))
	fmt.Println(t.Search("ac", true))
	fmt.Println(t.Search("", true))
	fmt.Println(t.Size())

	// Output:
	// true
	// true
	// false
	// true
	// 5
}

func Example_emptyString() {
	t := New()
	t.Insert("b")

	fmt.Println(t.Search("", true))
	fmt.Println(t.Search("", false))

	// Output:
	// false
	// true
}

func ExampleTree_PrefixSearch() {
	t := New()
	t.Insert("Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")

	fmt.Println(t.PrefixSearch("T"))
	fmt.Println(t.PrefixSearch("S"))
	fmt.Println(t.PrefixSearch("t"))

	// Output:
	// [Thursday Tuesday]
	// [Saturday Sunday]
	// []
}

func ExampleTree_String() {
	t := New()
	t.Insert("to", "tea", "a")
	fmt.Println(t)

	// Output:
	// 't'
	//   eq: 'o'*
	//     lt: 'e'
	//       eq: 'a'*
	//   lt: 'a'*
}
