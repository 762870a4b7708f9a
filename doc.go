/*
Package jsondom parses JSON text into an ordered document model and
serializes that model back to text. Unlike `encoding/json`, it does not map
documents onto Go structs: the unit of work is the Object, an ordered
mutable map of string keys to typed values, which preserves member order
through a parse/serialize round trip.

1. Parsing and Reading

Parse turns a document into an *Object. The top level must be an object, as
in a configuration file or an API payload. Typed accessors read scalar
fields with exact type checks, failing rather than coercing:

	doc, err := jsondom.Parse(`{"name": "svc", "port": 8080, "debug": false}`)
	if err != nil {
		// handle error
	}

	name, err := doc.GetString("name") // "svc"
	port, err := doc.GetInt32("port")  // 8080

	for key, value := range doc.All() {
		fmt.Println(key, value.Kind())
	}

Numbers are classified by their written form: an integer that fits 32 bits
is an Int32, a larger one an Int64, and anything with a fraction or
exponent a Float64.

2. Building and Serializing

An Object can be built or edited in code and rendered with Serialize. The
default rendering is pretty two-space indentation; Compact yields a single
line:

	doc := jsondom.NewObject()
	doc.Set("name", jsondom.String("svc"))
	doc.Set("port", jsondom.Int32(8080))

	text, err := jsondom.Serialize(doc, jsondom.Compact())
	// {"name":"svc","port":8080}

Serialized output is always ASCII: every code point at or above 128 is
written as a \uXXXX escape.

The Decoder and Encoder types wrap the same operations around an io.Reader
and io.Writer for callers working with streams, though input is always read
fully into memory first.
*/
package jsondom
