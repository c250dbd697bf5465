// Package badgerstore persists embedding models in a BadgerDB database.
//
// A model is stored as one metadata record plus one record per vocabulary
// term, all in the MUS binary format. Loading reconstructs the full model
// and verifies the term count against the metadata.
package badgerstore
