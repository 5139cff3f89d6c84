// Package ccml synthesizes and validates the carrier's XML call-control
// dialect. Verbs: Response, Dial, Service, Number, Hangup. Every response the
// engine emits goes through this package, so a malformed document can never
// reach the carrier.
package ccml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the XML declaration prefix of every document.
const Header = `<?xml version="1.0" encoding="UTF-8"?>`

// Providers is the closed set of voice-agent provider tags.
var Providers = []string{
	"vapi",
	"retell",
	"bland",
	"synthflow",
	"elevenlabs",
	"playai",
	"vogent",
	"openai_realtime",
	"ultravox",
	"pipecat",
	"dasha",
	"sindarin",
	"hume",
	"millis",
	"polyai",
	"parloa",
	"custom_sip",
	"byoc",
}

// authProviders is the closed set of providers whose Service element carries
// username/password attributes.
var authProviders = map[string]bool{
	"custom_sip": true,
	"byoc":       true,
	"pipecat":    true,
}

// ValidProvider reports whether the tag is a known provider.
func ValidProvider(tag string) bool {
	for _, p := range Providers {
		if p == tag {
			return true
		}
	}
	return false
}

// RequiresAuth reports whether a provider's Service element carries
// credentials.
func RequiresAuth(provider string) bool {
	return authProviders[provider]
}

// AgentEndpoint is the subset of a voice agent the synthesizer needs.
// Username/Password are cleartext here — already decrypted by the caller and
// never logged.
type AgentEndpoint struct {
	Provider     string
	ServiceValue string
	Username     string
	Password     string
}

// TrunkDial carries the Dial attributes for an outbound trunk leg.
type TrunkDial struct {
	TrunkIDs    []string
	RingTimeout int // seconds; 0 = omit
	MaxDuration int // seconds; 0 = omit
}

// DialVoiceAgent emits a Dial/Service document bridging the call to an AI
// voice-agent endpoint.
func DialVoiceAgent(agent AgentEndpoint, callerID string) string {
	var b builder
	b.open("Response")
	b.open("Dial", attrIf("callerId", callerID)...)
	attrs := []attr{{"provider", agent.Provider}}
	if RequiresAuth(agent.Provider) {
		attrs = append(attrs, attr{"username", agent.Username}, attr{"password", agent.Password})
	}
	b.text("Service", agent.ServiceValue, attrs...)
	b.close("Dial")
	b.close("Response")
	return b.String()
}

// DialGroup emits the document for the member an agent-group strategy
// selected. It is DialVoiceAgent with the chosen member.
func DialGroup(selected AgentEndpoint, callerID string) string {
	return DialVoiceAgent(selected, callerID)
}

// DialTrunk emits a Dial/Number document sending the call to an outbound
// trunk. Trunk ids are comma-joined into the trunks attribute.
func DialTrunk(destination string, trunk *TrunkDial, callerID string) string {
	var b builder
	b.open("Response")
	attrs := []attr{}
	if trunk != nil && len(trunk.TrunkIDs) > 0 {
		attrs = append(attrs, attr{"trunks", strings.Join(trunk.TrunkIDs, ",")})
	}
	if trunk != nil && trunk.RingTimeout > 0 {
		attrs = append(attrs, attr{"timeout", strconv.Itoa(trunk.RingTimeout)})
	}
	if trunk != nil && trunk.MaxDuration > 0 {
		attrs = append(attrs, attr{"maxDuration", strconv.Itoa(trunk.MaxDuration)})
	}
	attrs = append(attrs, attrIf("callerId", callerID)...)
	b.open("Dial", attrs...)
	b.text("Number", destination)
	b.close("Dial")
	b.close("Response")
	return b.String()
}

// Hangup emits the close-the-call document. Also the universal error
// response: the call must never hang on an engine failure.
func Hangup() string {
	return Header + "<Response><Hangup/></Response>"
}

// --- Document construction ---

type attr struct{ name, value string }

func attrIf(name, value string) []attr {
	if value == "" {
		return nil
	}
	return []attr{{name, value}}
}

// builder writes escaped XML by hand: encoding/xml's marshaler cannot emit
// the self-closed <Hangup/> form the carrier's parser expects.
type builder struct {
	sb      strings.Builder
	started bool
}

func (b *builder) init() {
	if !b.started {
		b.sb.WriteString(Header)
		b.started = true
	}
}

func (b *builder) open(name string, attrs ...attr) {
	b.init()
	b.sb.WriteByte('<')
	b.sb.WriteString(name)
	b.writeAttrs(attrs)
	b.sb.WriteByte('>')
}

func (b *builder) close(name string) {
	b.sb.WriteString("</")
	b.sb.WriteString(name)
	b.sb.WriteByte('>')
}

// text writes <name attrs>escaped value</name>.
func (b *builder) text(name, value string, attrs ...attr) {
	b.open(name, attrs...)
	_ = xml.EscapeText(&b.sb, []byte(value))
	b.close(name)
}

func (b *builder) writeAttrs(attrs []attr) {
	for _, a := range attrs {
		b.sb.WriteByte(' ')
		b.sb.WriteString(a.name)
		b.sb.WriteString(`="`)
		_ = xml.EscapeText(&b.sb, []byte(a.value))
		b.sb.WriteByte('"')
	}
}

func (b *builder) String() string {
	return b.sb.String()
}

// --- Validation ---

// allowed CCML elements and their permitted children.
var allowedChildren = map[string]map[string]bool{
	"Response": {"Dial": true, "Hangup": true},
	"Dial":     {"Service": true, "Number": true},
	"Service":  {},
	"Number":   {},
	"Hangup":   {},
}

// Validate checks that a document is well-formed CCML: root Response,
// exactly one of Dial|Hangup, and for Dial exactly one Service or Number.
func Validate(doc string) error {
	dec := xml.NewDecoder(strings.NewReader(doc))

	type frame struct {
		name     string
		children []string
	}
	var stack []frame
	var root *frame

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("malformed XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if len(stack) == 0 {
				if name != "Response" {
					return fmt.Errorf("root element must be Response, got %s", name)
				}
			} else {
				parent := &stack[len(stack)-1]
				if !allowedChildren[parent.name][name] {
					return fmt.Errorf("element %s not allowed inside %s", name, parent.name)
				}
				parent.children = append(parent.children, name)
			}
			stack = append(stack, frame{name: name})
		case xml.EndElement:
			done := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = &done
			} else if done.name == "Dial" {
				if err := checkDial(done.children); err != nil {
					return err
				}
			}
		}
	}

	if root == nil {
		return fmt.Errorf("empty document")
	}
	if len(root.children) != 1 {
		return fmt.Errorf("Response must have exactly one child, got %d", len(root.children))
	}
	return nil
}

func checkDial(children []string) error {
	if len(children) != 1 {
		return fmt.Errorf("Dial must contain exactly one Service or Number, got %d children", len(children))
	}
	return nil
}
