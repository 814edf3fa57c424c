package conv

import (
	"time"

	"github.com/scripledger/scrip/pkg/api"
	"github.com/scripledger/scrip/pkg/ledger"
	pb "github.com/scripledger/scrip/pkg/proto/gen"
)

func EventFromProto(e *pb.Event) (ledger.Entry, error) {
	kind, err := ledger.ParseEventKind(e.GetKind())
	if err != nil {
		return ledger.Entry{}, err
	}

	m, err := MetaFromProto(e.GetMeta())
	if err != nil {
		return ledger.Entry{}, err
	}

	var ts time.Time
	if e.GetTime() != 0 {
		ts = time.Unix(0, e.GetTime()).UTC()
	}

	out := ledger.Entry{
		ID:   e.GetId(),
		Seq:  e.GetSeq(),
		Time: ts,
		Kind: kind,
		Meta: m,
		From: api.OwnerID(e.GetFrom()),
		To:   api.OwnerID(e.GetTo()),
	}

	// Transfer entries carry no tag at all, which the strict TagFromProto
	// would reject as too short.
	if len(e.GetTag()) > 0 {
		if out.Tag, err = TagFromProto(e.GetTag()); err != nil {
			return ledger.Entry{}, err
		}
	}

	return out, nil
}

func EventToProto(e ledger.Entry) *pb.Event {
	out := &pb.Event{
		Id:   e.ID,
		Seq:  e.Seq,
		Kind: e.Kind.String(),
		Meta: MetaToProto(e.Meta),
		From: OwnerToProto(e.From),
		To:   OwnerToProto(e.To),
	}

	if !e.Time.IsZero() {
		out.Time = e.Time.UnixNano()
	}

	if e.Kind != ledger.EventTransfer {
		out.Tag = TagToProto(e.Tag)
	}

	return out
}
