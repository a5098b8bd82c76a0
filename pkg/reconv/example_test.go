package reconv_test

import (
	"fmt"
	"log"

	"github.com/recokit/reconv/pkg/reconv"
)

func Example() {
	doc := []byte(`{"items":[{"guid":"abc-123","text":"Enable X","severity":"High","service":"VM"}]}`)

	records, err := reconv.Convert(doc, "checklist.json",
		reconv.WithDictionary(reconv.Dictionary{
			{Names: []string{"VM"}, Service: "Virtual Machines", ARM: "Microsoft.Compute/virtualMachines"},
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	rec := records[0]
	fmt.Printf("title: %s\n", *rec.Title)
	fmt.Printf("severity: %d\n", *rec.Severity)
	fmt.Printf("service: %s\n", *rec.Service)
	fmt.Printf("resourceTypes: %v\n", rec.ResourceTypes)
	// Output:
	// title: Enable X
	// severity: 0
	// service: Virtual Machines
	// resourceTypes: [Microsoft.Compute/virtualMachines]
}
