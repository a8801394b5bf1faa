package component

import (
	"github.com/vango-dev/componentx/pkg/attrs"
	"github.com/vango-dev/componentx/pkg/classlist"
	"github.com/vango-dev/componentx/pkg/style"
)

// RootKey is the bag key holding the hoisted root attributes.
const RootKey = "rootAttrs"

// Reconcile computes the final attribute bag for one render of c.
//
// The caller's bag is deep-merged over a copy of c's defaults when caller is
// a bag, and ignored otherwise. The result carries a RootKey sub-bag with
// every root attribute, the data-component marker and the composed class.
// Neither caller nor the defaults are modified.
func Reconcile(caller any, c *Component) attrs.Bag {
	merged := attrs.Copy(c.defaults())
	if attrs.IsBag(caller) {
		merged = attrs.Merge(merged, caller)
	}

	root := attrs.Copy(merged[RootKey])

	if c.Name != "" && !hasKey(merged, style.MarkerAttr) && !hasKey(root, style.MarkerAttr) {
		root[style.MarkerAttr] = c.Name
	}

	attrs.Merge(root, attrs.Pick(merged, attrs.IsRootKey))

	if class := classlist.Join(c.classList(merged), merged.String("class")); class != "" {
		root["class"] = class
	}

	merged[RootKey] = root
	return merged
}

func hasKey(b attrs.Bag, key string) bool {
	_, ok := b[key]
	return ok
}
