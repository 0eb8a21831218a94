// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of string keys mapped to integer
// values, with parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree.  After an insert the
// lowest unbalanced ancestor is repaired by a tri-node restructure of
// the three nodes on the path to the new key; after a delete every
// ancestor up to the root is examined and rotated as required.
//
// Inserting an existing key overwrites its value.  Deleting a node
// with two children copies the successor's key and value into that
// node, so a *Node obtained before such a delete may afterwards hold
// a different key.
package avl
