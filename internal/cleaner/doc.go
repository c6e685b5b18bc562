// Package cleaner provides the per-field-code text normalizers applied
// before formatting. Cleaners are deterministic and side-effect free;
// conversion treats them as opaque collaborators and only relies on
// their signature.
package cleaner
