/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Package documentation
 */

/*
Package ipp implements the IPP wire format (RFC 8010) and a typed
attribute layer on top of it.

Messages are Request and Response values. Each holds an ordered list
of attribute groups; each group holds an ordered, name-keyed
Attributes container. Collections are Attributes too, so nested
collections are typed exactly like groups.

Building and sending a request:

	rq := ipp.NewPrinterRequest(ipp.OpGetPrinterAttributes,
		"ipp://localhost/printers/office", ipp.RequestOptions{})
	ipp.OperationAttrs.RequestedAttributes.Set(rq.Operation(),
		[]string{"all"})

	url, err := rq.TargetURL() // http://localhost:631/printers/office
	data, err := rq.EncodeBytes()

Reading a response:

	rsp, err := ipp.DecodeResponse(body)
	if err == nil {
		err = rsp.StatusError()
	}
	state, ok := ipp.PrinterDescriptionAttrs.PrinterState.Get(rsp.Printer())

Decoding errors are *DecodeError, carrying the byte offset of the
failure and wrapping one of ErrMalformedHeader, ErrUnexpectedValueTag,
ErrUnexpectedDelimiterTag, ErrMissingEndOfAttributes,
ErrMissingEndOfCollection, ErrInvalidCollectionSyntax or
ErrMalformedValue. Values with tags this package doesn't know are not
an error: they decode into UnknownTag and encode back unchanged.

Nothing in this package blocks or keeps global mutable state, so
independent messages may be encoded and decoded concurrently.
*/
package ipp
