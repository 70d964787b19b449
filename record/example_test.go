package record_test

import (
	"fmt"

	"record-forge/record"
)

func Example() {
	pet := record.MustDefine("Pet", record.Fields(
		record.F("name", "string"),
		record.F("species", "string"),
		record.D("fluffy", "bool", true),
	))

	fmt.Println(pet.Signature())

	beans, _ := pet.New("Beans", "cat")
	rex, _ := pet.NewWith([]any{"Rex", "dog"}, map[string]any{"fluffy": false})

	fmt.Println(beans)
	fmt.Println(rex)
	fmt.Println(beans.Equal(rex))

	// Output:
	// (name, species, fluffy=true)
	// Pet(name="Beans", species="cat", fluffy=true)
	// Pet(name="Rex", species="dog", fluffy=false)
	// false
}

func ExampleType_Extend() {
	animal := record.MustDefine("Animal", record.Fields(
		record.F("name", "string"),
		record.D("legs", "int", 4),
	))
	snake, _ := animal.Extend("Snake", record.Fields(
		record.D("legs", "int", 0),
		record.D("venomous", "bool", false),
	))

	fmt.Println(snake.Signature())

	sid, _ := snake.New("Sid")
	fmt.Println(sid)

	// Output:
	// (name, legs=0, venomous=false)
	// Snake(name="Sid", legs=0, venomous=false)
}
