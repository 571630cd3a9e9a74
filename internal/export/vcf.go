package export

import (
	"bytes"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/emersion/go-vcard"
)

const vcardVersion = "3.0"

func encodeVCF(contacts []domain.Contact) ([]byte, error) {
	var buf bytes.Buffer
	enc := vcard.NewEncoder(&buf)
	for _, c := range contacts {
		if err := enc.Encode(card(c)); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// card builds one vCard. N splits the name on the first space into given
// and family name.
func card(c domain.Contact) vcard.Card {
	name, category := domain.SplitDisplay(c.Display)
	given, family, _ := strings.Cut(name, " ")

	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, vcardVersion)
	card.SetValue(vcard.FieldFormattedName, c.FullName())
	card.SetName(&vcard.Name{GivenName: given, FamilyName: family})
	card.Add(vcard.FieldTelephone, &vcard.Field{
		Value:  domain.InternationalPhone(c.Phone),
		Params: vcard.Params{vcard.ParamType: {strings.ToUpper(vcard.TypeCell)}},
	})
	card.SetValue(vcard.FieldNote, "Categoria: "+category)
	return card
}
