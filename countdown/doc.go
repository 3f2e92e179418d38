// Package countdown holds named countdowns to target dates and computes the
// whole days remaining for each.
//
// A Store is not safe for concurrent use. Hosts drive it from a single
// goroutine, the way a UI event loop would:
//
//	store := countdown.NewStore(countdown.StoreOptions{})
//	id, err := store.AddText("Vacances", "2025-07-14")
//	if err != nil {
//	    return err
//	}
//	for _, row := range store.List(time.Now()) {
//	    fmt.Println(row.Label, row.Days)
//	}
//	store.Remove(id)
package countdown
