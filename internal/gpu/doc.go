// Package gpu detects the vendor of the machine's default graphics adapter.
//
// Detection goes through an [AdapterQuerier], which reports the adapter's
// driver name. [Detector] maps that name onto [models.Vendor] with an exact
// string match and never fails: any query problem degrades to
// [models.VendorUnknown], so tweak resolution falls back to the global layer.
package gpu
