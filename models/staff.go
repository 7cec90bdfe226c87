package models

import "fmt"

// Member field names accepted by UpdateMemberField.
const (
    MemberFieldName  = "name"
    MemberFieldWork  = "work"
    MemberFieldPhone = "phone"
)

// staffAllowed rejects staff edits on categories whose rule table has
// no staff concept (Temple). Professionals and organizations both
// accept edits; the former simply start empty.
func staffAllowed(c Category) error {
    rules, err := RulesFor(c)
    if err != nil {
        return err
    }
    if !rules.Staff {
        return fmt.Errorf("%w: %q", ErrStaffNotSupported, string(c))
    }
    return nil
}

// cloneMembers copies the staff slice so callers keep their original
// listing value untouched.
func cloneMembers(members []Member) []Member {
    out := make([]Member, len(members))
    copy(out, members)
    return out
}

// AddMember appends one member to the staff list and returns the
// updated listing. The template may be zero-valued; blank placeholder
// rows are how new entries start out before they are filled in.
func (l Listing) AddMember(template Member) (Listing, error) {
    if err := staffAllowed(l.Type); err != nil {
        return Listing{}, err
    }
    members := cloneMembers(l.Members)
    l.Members = append(members, template)
    return l, nil
}

// UpdateMemberField replaces a single scalar field of the member at
// index, leaving every other member and every non-staff attribute
// unchanged.
func (l Listing) UpdateMemberField(index int, field, value string) (Listing, error) {
    if err := staffAllowed(l.Type); err != nil {
        return Listing{}, err
    }
    if index < 0 || index >= len(l.Members) {
        return Listing{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(l.Members))
    }
    members := cloneMembers(l.Members)
    switch field {
    case MemberFieldName:
        members[index].Name = value
    case MemberFieldWork:
        members[index].Work = value
    case MemberFieldPhone:
        members[index].Phone = value
    default:
        return Listing{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
    }
    l.Members = members
    return l, nil
}

// RemoveMemberAt removes the member at index.
func (l Listing) RemoveMemberAt(index int) (Listing, error) {
    if err := staffAllowed(l.Type); err != nil {
        return Listing{}, err
    }
    if index < 0 || index >= len(l.Members) {
        return Listing{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(l.Members))
    }
    members := make([]Member, 0, len(l.Members)-1)
    members = append(members, l.Members[:index]...)
    members = append(members, l.Members[index+1:]...)
    l.Members = members
    return l, nil
}

// RemoveMemberMatching removes the first member equal on (name, phone).
// When duplicates exist only the first occurrence goes; members carry no
// identity beyond their fields, so there is no way to pick between
// structurally identical entries.
func (l Listing) RemoveMemberMatching(name, phone string) (Listing, error) {
    if err := staffAllowed(l.Type); err != nil {
        return Listing{}, err
    }
    for i, m := range l.Members {
        if m.Name == name && m.Phone == phone {
            return l.RemoveMemberAt(i)
        }
    }
    return Listing{}, fmt.Errorf("%w: %s (%s)", ErrMemberNotFound, name, phone)
}

// MergeStaffUpdate replaces the entire staff sequence in one step. The
// document store only supports whole-array replace, so a batch of edits
// is computed in memory and persisted as a single write. The replace is
// not compare-and-swap: a concurrent editor who loaded earlier and saves
// later wins.
func MergeStaffUpdate(existing Listing, proposed []Member) (Listing, error) {
    if err := staffAllowed(existing.Type); err != nil {
        return Listing{}, err
    }
    existing.Members = cloneMembers(proposed)
    return existing, nil
}

// StaffOp is one edit in a batched staff update. Op is "add", "update"
// or "remove"; remove takes either an index or a (name, phone) match.
type StaffOp struct {
    Op     string  `json:"op"`
    Member *Member `json:"member,omitempty"`
    Index  *int    `json:"index,omitempty"`
    Field  string  `json:"field,omitempty"`
    Value  string  `json:"value,omitempty"`
    Match  *Member `json:"match,omitempty"`
}

// ApplyStaffOps runs a batch of edits against a listing in order and
// returns the merged result. Nothing is persisted here; the caller
// issues one replace with the outcome. Any failing op aborts the whole
// batch with the original listing untouched.
func ApplyStaffOps(existing Listing, ops []StaffOp) (Listing, error) {
    current := existing
    var err error
    for i, op := range ops {
        switch op.Op {
        case "add":
            template := Member{}
            if op.Member != nil {
                template = *op.Member
            }
            current, err = current.AddMember(template)
        case "update":
            if op.Index == nil {
                return Listing{}, fmt.Errorf("op %d: %w: update needs an index", i, ErrIndexOutOfRange)
            }
            current, err = current.UpdateMemberField(*op.Index, op.Field, op.Value)
        case "remove":
            if op.Index != nil {
                current, err = current.RemoveMemberAt(*op.Index)
            } else if op.Match != nil {
                current, err = current.RemoveMemberMatching(op.Match.Name, op.Match.Phone)
            } else {
                return Listing{}, fmt.Errorf("op %d: %w: remove needs an index or a match", i, ErrMemberNotFound)
            }
        default:
            return Listing{}, fmt.Errorf("op %d: unknown staff op %q", i, op.Op)
        }
        if err != nil {
            return Listing{}, fmt.Errorf("op %d: %w", i, err)
        }
    }
    return MergeStaffUpdate(existing, current.Members)
}
