package jurisdiction

import (
	"log"

	"github.com/ComplianceRelish/LexAssist-sub000/internal/gazetteer"
)

// DefaultResolver is the process-wide resolver, built once at startup.
var DefaultResolver *Resolver

func Init() {
	store, err := gazetteer.Load()
	if err != nil {
		log.Fatal("Failed to load gazetteer: ", err)
	}

	DefaultResolver, err = NewResolver(store)
	if err != nil {
		log.Fatal("Failed to build jurisdiction resolver: ", err)
	}

	log.Printf("[jurisdiction] resolver ready: %d states, %d districts, %d aliases",
		len(store.States()), len(store.Districts()),
		len(store.TalukAliases())+len(store.PlaceAliases()))
}
