package api

// OwnerID is the unique identity of a party holding shares. The ledger never
// interprets it; whatever identity layer sits in front of the ledger decides
// what these look like.
type OwnerID string

const ZeroOwner OwnerID = ""

func (oID OwnerID) String() string {
	return string(oID)
}
